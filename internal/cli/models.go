package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/autocrud/internal/wire"
)

// ModelsCmd returns the models command
func ModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the Eloquent models found in the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.ModelsAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.List(context.Background())
			return err
		},
	}
}

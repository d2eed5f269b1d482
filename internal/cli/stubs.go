package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/autocrud/internal/wire"
)

// StubsCmd returns the stubs command
func StubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubs",
		Short: "Manage the stub templates",
	}
	cmd.AddCommand(stubsPublishCmd())
	return cmd
}

func stubsPublishCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Copy the default stubs into the project for customisation",
		Long: `Copy the default stubs to stubs/vendor/autocrud (or the configured stubs_path).
Published stubs take precedence over the built-in ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := wire.StubSource()
			if err != nil {
				return err
			}

			written, kept, err := src.Publish(context.Background(), force)
			if err != nil {
				return fmt.Errorf("failed to publish stubs: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, path := range written {
				fmt.Fprintf(out, "✓ Published %s\n", path)
			}
			for _, path := range kept {
				fmt.Fprintf(out, "- Kept %s\n", path)
			}
			if len(kept) > 0 {
				fmt.Fprintln(out, "Use --force to replace customised stubs.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace stubs that were already published")
	return cmd
}

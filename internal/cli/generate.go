package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ports/primary"
	"github.com/example/autocrud/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var req primary.GenerateRequest

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"crud", "g"},
		Short:   "Generate CRUD classes for Eloquent models",
		Long: `Generate requests, resources, controllers and, optionally, repositories,
services and spatie-data objects for one or more Eloquent models.

Models are looked up below the models path (app/Models by default). A plain
name matches any file with that name; use Blog/Post to pick a sub directory.
Without --model the discovered models are offered for selection.

Existing files are kept unless --overwrite is given.

Examples:
  autocrud generate -M Post
  autocrud generate -M Blog/Post -M Comment --repository
  autocrud generate -M Post -T web --pattern spatie-data
  autocrud generate --skip-validation --no-confirmations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.GenerateAdapter()
			if err != nil {
				return err
			}

			ctx := wire.Logger().WithContext(context.Background())
			_, err = adapter.Generate(ctx, req)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&req.Models, "model", "M", nil, "Model to generate CRUD for (repeatable)")
	flags.StringVarP(&req.Type, "type", "T", model.TypeAPI, "Type of CRUD: api or web")
	flags.BoolVarP(&req.Repository, "repository", "R", false, "Generate repository and service layers")
	flags.BoolVarP(&req.Overwrite, "overwrite", "O", false, "Overwrite existing files")
	flags.StringVarP(&req.Pattern, "pattern", "P", "", "Data pattern: spatie-data")
	flags.BoolVarP(&req.Curl, "curl", "C", false, "Export CURL commands (handled by an external tool)")
	flags.BoolVar(&req.Postman, "postman", false, "Export a Postman collection (handled by an external tool)")
	flags.BoolVarP(&req.Force, "force", "F", false, "Generate even when the table does not exist")
	flags.BoolVarP(&req.SkipValidation, "skip-validation", "S", false, "Skip the database connection and table checks")
	flags.BoolVar(&req.NoConfirmations, "no-confirmations", false, "Never ask for confirmation")

	return cmd
}

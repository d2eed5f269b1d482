package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/autocrud/internal/config"
	"github.com/example/autocrud/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default autocrud config to the project",
		Long: `Write .autocrud/config.json with the default layout of a Laravel project.
Edit it to point autocrud at custom models or application directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := wire.ProjectDir()
			if err != nil {
				return err
			}

			path := filepath.Join(dir, config.Dir, "config.json")
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to replace it)\n", path)
				return nil
			}

			if err := config.SaveConfig(dir, config.Default()); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Config written to %s\n", path)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  autocrud models")
			fmt.Fprintln(out, "  autocrud generate -M Post")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing config")
	return cmd
}

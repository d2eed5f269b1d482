package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/autocrud/internal/wire"
)

// AddGlobalFlags registers the flags every command shares and configures
// the wiring from them before any command runs.
func AddGlobalFlags(root *cobra.Command) {
	var opts wire.Options

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ProjectDir, "project", "", "Laravel project root (default: current directory)")
	flags.StringVar(&opts.ModelsPath, "models-path", "", "Models directory relative to the project (default: app/Models)")
	flags.StringVar(&opts.ModelsNamespace, "models-namespace", "", `Models namespace (default: App\Models)`)
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output and debug logging")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		opts.In = cmd.InOrStdin()
		opts.Out = cmd.OutOrStdout()
		wire.Configure(opts)
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return wire.Close()
	}
}

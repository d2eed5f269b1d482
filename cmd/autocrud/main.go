package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/autocrud/internal/cli"
	"github.com/example/autocrud/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "autocrud",
		Short:   "autocrud - CRUD generator for Laravel Eloquent models",
		Version: version.String(),
		Long: `autocrud generates repositories, services, form requests, API resources,
controllers and spatie-data objects for the Eloquent models of a Laravel project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.ModelsCmd())
	rootCmd.AddCommand(cli.StubsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

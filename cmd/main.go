package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:   "park-live-board",
		Short: "Serve live wait times, show schedules and map markers for the parks",
		Long: `park-live-board polls the live theme park feed, merges it with the static
point catalog, classifies every entity and serves the result over HTTP.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	addServeCmd(rootCmd)
	addListCmd(rootCmd)
	addFeedStubCmd(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln(err)
		return 1
	}
	return 0
}

func addServeCmd(rootCmd *cobra.Command) {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the refresh loops and the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/presentation"
	"github.com/KasumiMercury/park-live-board/internal/service/zone"
)

// addListCmd adds a 'list' subcommand that runs a single refresh cycle and
// prints the result without starting the server
func addListCmd(rootCmd *cobra.Command) {
	var raw bool

	listCmd := &cobra.Command{
		Use:       "list <view>",
		Short:     "Refresh one view once and print it as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{domain.ViewMap.String(), domain.ViewAttractions.String(), domain.ViewShows.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			view := domain.View(args[0])
			if !view.IsValid() {
				return fmt.Errorf("%w: %s", domain.ErrUnknownView, args[0])
			}

			ctx := cmd.Context()

			// stdout carries the JSON output
			cfg, obs, err := setup(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdownObservability(obs)

			svc, err := newRefreshService(cfg, nil, nil, nil)
			if err != nil {
				return err
			}

			snap, err := svc.RunCycle(ctx, view)
			if err != nil {
				return err
			}

			var out any = snap
			if !raw {
				out = presentation.NewPresenter(zone.NewClassifier()).Render(snap, time.Now())
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	listCmd.Flags().BoolVar(&raw, "raw", false, "Print classified records instead of the rendered board")

	rootCmd.AddCommand(listCmd)
}

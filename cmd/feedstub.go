package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/park-live-board/internal/feedstub"
	"github.com/KasumiMercury/park-live-board/internal/observability/middleware"
)

// addFeedStubCmd adds a 'feed-stub' subcommand serving a seedable fake of
// the live feed for local runs and load tests
func addFeedStubCmd(rootCmd *cobra.Command) {
	var (
		port        string
		destination string
		seedFile    string
	)

	stubCmd := &cobra.Command{
		Use:   "feed-stub",
		Short: "Serve a seedable fake of the live feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			obs, err := initObservability(ctx, slog.LevelInfo, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdownObservability(obs)
			slog.SetDefault(obs.Logger())

			storage := feedstub.NewStorage()
			if seedFile != "" {
				if err := seedFromFile(storage, destination, seedFile); err != nil {
					return err
				}
			}

			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(middleware.PanicRecoveryGin())
			feedstub.NewHandler(storage).Register(r)

			return runStubServer(ctx, r, port)
		},
	}

	stubCmd.Flags().StringVar(&port, "port", "8090", "Port to listen on")
	stubCmd.Flags().StringVar(&destination, "destination", "", "Destination id the seed file is loaded into")
	stubCmd.Flags().StringVar(&seedFile, "seed", "", "JSON seed request loaded at startup")
	stubCmd.MarkFlagsRequiredTogether("destination", "seed")

	rootCmd.AddCommand(stubCmd)
}

func seedFromFile(storage *feedstub.Storage, destination, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var req feedstub.SeedRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to decode seed file: %w", err)
	}

	storage.Seed(destination, req.Entities)

	slog.Info("seeded feed from file",
		slog.String("destination", destination),
		slog.String("path", path),
		slog.Int("entity_count", len(req.Entities)),
	)
	return nil
}

func runStubServer(ctx context.Context, handler http.Handler, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting feed stub", slog.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("feed stub exited with error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown feed stub: %w", err)
		}
		return nil
	})

	return g.Wait()
}

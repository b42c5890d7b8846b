//go:build gcloud

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/KasumiMercury/park-live-board/internal/observability"
	"github.com/KasumiMercury/park-live-board/internal/observability/logging"
)

func initObservability(ctx context.Context, level slog.Level, out io.Writer) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "park-live-board"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  0.1,
		DefaultModule: logging.Module("board"),
		LogLevel:      level,
		Output:        out,
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}

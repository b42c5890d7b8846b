//go:build !gcloud

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
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "park-live-board"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("board"),
		LogLevel:      level,
		Output:        out,
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}

package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
)

const defaultRedisImage = "redis:8-alpine"

// SetupRedisContainer starts a throwaway Redis and skips the test when no
// container runtime is available. TEST_REDIS_IMAGE overrides the image.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	image := os.Getenv("TEST_REDIS_IMAGE")
	if image == "" {
		image = defaultRedisImage
	}

	container, err := redismodule.Run(ctx, image)
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Skipf("failed to get redis connection string: %v", err)
	}

	opts, err := redis.ParseURL(connStr)
	if err != nil {
		t.Fatalf("failed to parse redis connection string %q: %v", connStr, err)
	}
	client := redis.NewClient(opts)

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/yamlres/pkg/fsys"
	"github.com/dmitrymomot/yamlres/pkg/health"
	"github.com/dmitrymomot/yamlres/pkg/redis"
)

// backend is an opened filesystem plus what it takes to probe and release it.
type backend struct {
	fs     fsys.FS
	close  func() error
	checks health.Checks
}

func openBackend(ctx context.Context, cfg Config, log *slog.Logger) (*backend, error) {
	switch cfg.Backend {
	case backendS3:
		store, err := fsys.NewS3(cfg.S3)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "using s3 backend",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("prefix", cfg.S3.Prefix),
		)
		return &backend{fs: store, close: noop, checks: health.Checks{"s3": store.Healthcheck}}, nil

	case backendRedis:
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		store, err := fsys.NewRedis(client, cfg.RedisPrefix)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		log.DebugContext(ctx, "using redis backend", slog.String("prefix", cfg.RedisPrefix))
		return &backend{fs: store, close: client.Close, checks: health.Checks{"redis": redis.Healthcheck(client)}}, nil

	case backendOS:
		store, err := fsys.NewOS(cfg.Root)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "using os backend", slog.String("root", store.Dir()))
		return &backend{fs: store, close: store.Close}, nil
	}

	return nil, fmt.Errorf("%w: unknown backend %q", errInvalidConfig, cfg.Backend)
}

func noop() error { return nil }

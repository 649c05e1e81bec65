package main

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/yamlres"
	"github.com/dmitrymomot/yamlres/pkg/fsys"
	"github.com/dmitrymomot/yamlres/pkg/logger"
)

const (
	backendOS    = "os"
	backendS3    = "s3"
	backendRedis = "redis"
)

var backends = []string{backendOS, backendS3, backendRedis}

// Config is the CLI configuration read from the environment.
type Config struct {
	yamlres.Settings

	ReferenceLanguage string `env:"YAMLRES_REFERENCE_LANGUAGE" envDefault:"en"`
	Backend           string `env:"YAMLRES_BACKEND" envDefault:"os"`
	Root              string `env:"YAMLRES_ROOT" envDefault:"."`

	S3 fsys.S3Config `envPrefix:"YAMLRES_S3_"`

	RedisURL    string `env:"YAMLRES_REDIS_URL"`
	RedisPrefix string `env:"YAMLRES_REDIS_PREFIX" envDefault:"yamlres:"`

	Sentry logger.SentryConfig
}

func (c Config) validate() error {
	if !slices.Contains(backends, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q, expected one of %v", errInvalidConfig, c.Backend, backends)
	}
	if c.Backend == backendRedis && c.RedisURL == "" {
		return fmt.Errorf("%w: YAMLRES_REDIS_URL is required for the redis backend", errInvalidConfig)
	}
	return nil
}

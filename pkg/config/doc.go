// Package config fills tagged structs from environment variables.
//
// Optional dotenv files are read first with godotenv; variables already set
// in the process environment win over file values. The struct is then parsed
// with caarlos0/env:
//
//	type Config struct {
//		PathPattern string `env:"YAMLRES_PATH_PATTERN,required"`
//		Backend     string `env:"YAMLRES_BACKEND" envDefault:"os"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, ".env"); err != nil {
//		return err
//	}
//
// Parse does the same against an explicit variable map, which keeps tests
// independent of the process environment.
package config

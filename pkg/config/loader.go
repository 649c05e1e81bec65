package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads the given dotenv files into the process environment, skipping
// files that do not exist, and parses the environment into v.
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadFiles(files); err != nil {
		return err
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Parse fills v from environ only. The process environment is ignored.
func Parse[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// ReadFile returns the variables defined in a dotenv file without touching
// the process environment.
func ReadFile(name string) (map[string]string, error) {
	vars, err := godotenv.Read(name)
	if err != nil {
		return nil, errors.Join(ErrLoadingFile, fmt.Errorf("%s: %w", name, err))
	}
	return vars, nil
}

func loadFiles(files []string) error {
	for _, name := range files {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return errors.Join(ErrLoadingFile, fmt.Errorf("%s: %w", name, err))
		}
	}
	return nil
}

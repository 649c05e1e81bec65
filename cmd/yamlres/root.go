package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/yamlres"
	"github.com/dmitrymomot/yamlres/pkg/config"
	"github.com/dmitrymomot/yamlres/pkg/logger"
)

// Version is set via -ldflags.
var Version = "dev"

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// app holds what every command needs once the root pre-run has finished.
type app struct {
	streams streams
	cfg     Config
	log     *slog.Logger
	backend *backend
	plugin  *yamlres.Plugin

	envFile string
	verbose bool
}

func run(ctx context.Context, args []string, s streams) int {
	a := &app{streams: s, log: logger.NewNope()}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		a.log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		fmt.Fprintln(s.err, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yamlres",
		Short: "Read and write YAML translation files as flat messages",
		Long: `yamlres exposes per-language YAML documents, located by a path pattern
such as ./i18n/{language}.yml, as flat dot-separated messages.

Settings come from YAMLRES_* environment variables and an optional
dotenv file; flags override both.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsBackend(cmd) {
				return nil
			}
			return a.setup(cmd)
		},
	}
	cmd.SetIn(a.streams.in)
	cmd.SetOut(a.streams.out)
	cmd.SetErr(a.streams.err)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.String("pattern", "", "path pattern with a {language} placeholder (YAMLRES_PATH_PATTERN)")
	flags.String("backend", "", "storage backend: os, s3 or redis (YAMLRES_BACKEND)")
	flags.String("root", "", "root directory of the os backend (YAMLRES_ROOT)")

	cmd.AddCommand(
		newLanguagesCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newCheckCmd(a),
	)
	return cmd
}

// needsBackend reports whether cmd touches documents. Help and shell
// completion commands work without any configuration.
func needsBackend(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// setup loads configuration, applies flag overrides and opens the backend.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg, a.envFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	overrides := map[string]*string{
		"pattern":   &a.cfg.PathPattern,
		"backend":   &a.cfg.Backend,
		"root":      &a.cfg.Root,
		"reference": &a.cfg.ReferenceLanguage,
	}
	for name, dst := range overrides {
		if f := flags.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if err := a.cfg.validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logger.NewWithSentry(a.cfg.Sentry,
		logger.WithOutput(a.streams.err),
		logger.WithLevel(level),
		logger.WithExtractors(logger.OperationExtractor()),
	).With(slog.String("component", "cli"))

	ctx := logger.WithOperation(cmd.Context(), cmd.Name())
	cmd.SetContext(ctx)

	b, err := openBackend(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}
	a.backend = b

	a.plugin, err = yamlres.New(a.cfg.Settings, b.fs, yamlres.WithLogger(a.log))
	return err
}

func (a *app) close() error {
	if a.cfg.Sentry.DSN != "" {
		logger.FlushSentry(2 * time.Second)
	}
	if a.backend == nil {
		return nil
	}
	err := a.backend.close()
	a.backend = nil
	return err
}

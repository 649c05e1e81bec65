// Package logger builds slog loggers for the yamlres host and its tools.
//
// Loggers write JSON records, enriched per call by ContextExtractor functions,
// and can fan out warnings and errors to Sentry.
//
//	log := logger.New(
//		logger.WithOutput(os.Stderr),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(logger.OperationExtractor()),
//	)
//
//	ctx := logger.WithOperation(ctx, "export")
//	log.InfoContext(ctx, "resources exported", slog.Int("languages", 3))
//	// {"level":"INFO","msg":"resources exported","languages":3,"operation":"export"}
//
// # Sentry
//
// NewWithSentry behaves like New when the DSN is empty or the SDK fails to
// initialize, so the same code path serves local runs and CI:
//
//	log := logger.NewWithSentry(logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")})
//	defer logger.FlushSentry(2 * time.Second)
//
// Errors become Sentry issues; warnings are kept as searchable logs.
//
// Libraries that accept an optional *slog.Logger default to NewNope.
package logger

package logger

import (
	"context"
	"log/slog"
)

type operationKey struct{}

// WithOperation stores the name of the running operation in ctx.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

// OperationFromContext returns the name stored by WithOperation.
func OperationFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(operationKey{}).(string)
	return name, ok && name != ""
}

// OperationExtractor adds an "operation" attribute when ctx carries one.
func OperationExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		name, ok := OperationFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("operation", name), true
	}
}

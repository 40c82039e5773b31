// Package logging carries the service logger through the cli context and
// names it per fx module.
package logging

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type loggerKey struct{}

var ErrNoLogger = errors.New("no logger in context")

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext returns the logger stored by WithLogger.
func FromContext(ctx context.Context) (*zap.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	if !ok || log == nil {
		return nil, ErrNoLogger
	}

	return log, nil
}

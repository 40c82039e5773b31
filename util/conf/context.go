package conf

import (
	"context"
	"errors"
)

type configKey struct{}

var (
	ErrNoConfig   = errors.New("config not found in context")
	ErrConfigType = errors.New("config in context has a different type")
)

// WithConfig returns a copy of ctx carrying config.
func WithConfig[C any](ctx context.Context, config C) context.Context {
	return context.WithValue(ctx, configKey{}, config)
}

// FromContext returns the config stored by WithConfig. It fails when no
// config was stored or when it is not a C.
func FromContext[C any](ctx context.Context) (C, error) {
	var zero C

	value := ctx.Value(configKey{})
	if value == nil {
		return zero, ErrNoConfig
	}

	config, ok := value.(C)
	if !ok {
		return zero, ErrConfigType
	}

	return config, nil
}

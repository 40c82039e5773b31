package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Named returns an fx decorator naming the logger seen by a module.
func Named(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	}
}

// Module is an fx.Module whose logger is named after the module.
func Module(name string, opts ...fx.Option) fx.Option {
	return fx.Module(name, append([]fx.Option{fx.Decorate(Named(name))}, opts...)...)
}

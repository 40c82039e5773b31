package server

import "go.uber.org/fx"

// Module listens on config's address for as long as the fx app runs. The
// http.Handler to serve must be provided elsewhere.
func Module(config HttpConfig) fx.Option {
	return fx.Module("http",
		fx.Supply(config),
		fx.Provide(NewLifecycleServer),
		fx.Invoke(func(*HttpServer) {}),
	)
}

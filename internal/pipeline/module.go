package pipeline

import (
	"net/http"

	"go.uber.org/fx"
)

func Module(config Config) fx.Option {
	return fx.Module("pipeline",
		// provide config
		fx.Supply(config),
		// provide asset root
		fx.Provide(NewPublicFS),
		// provide pipeline
		fx.Provide(New),
		// expose pipeline as the handler served by every entrypoint
		fx.Provide(func(p *Pipeline) http.Handler { return p }),
	)
}

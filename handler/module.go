package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/handler/schema"
)

func Module() fx.Option {
	return fx.Module("handler",
		// provide request schemas
		fx.Provide(schema.NewUserRequestSchema),
		// provide handlers
		fx.Provide(NewIndexHandler),
		fx.Provide(NewUserHandler),
		// provide routes
		fx.Provide(NewIndexRoute),
		fx.Provide(NewGreetRoute),
		fx.Provide(NewProfileRoute),
	)
}

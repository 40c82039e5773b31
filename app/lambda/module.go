package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/util/logging"
)

// Module hands the pipeline to the Lambda runtime.
func Module(config Config) fx.Option {
	return logging.Module("lambda",
		fx.Supply(config),
		fx.Provide(NewLifecycleHandler),
		fx.Invoke(func(*LambdaHandler) {}),
	)
}

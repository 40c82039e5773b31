package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/handler"
	"github.com/lambda-feedback/greeter/internal/pipeline"
	"github.com/lambda-feedback/greeter/internal/shell"
	"github.com/lambda-feedback/greeter/util/conf"
	"github.com/lambda-feedback/greeter/util/logging"
)

// New creates the shell shared by every execution mode: the global config,
// the routes and the request pipeline serving them.
func New(ctx *cli.Context, pipelineConfig pipeline.Config) (*shell.Shell, error) {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.FromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide routes
		handler.Module(),
		// provide request pipeline
		pipeline.Module(pipelineConfig),
	)

	return shell.New(log, sharedModule), nil
}

package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/greeter/app"
	"github.com/lambda-feedback/greeter/app/lambda"
	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/util/conf"
	"github.com/lambda-feedback/greeter/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the service as an AWS Lambda runtime
interface client. Events from API Gateway (v1 or v2) or an
Application Load Balancer are translated into http requests
and answered exactly as the standalone server would.

The command blocks indefinitely, processing incoming events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags:       concatFlags(lambdaFlags, pipelineFlags),
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  lambda.DefaultConfig,
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.Path("config"),
		Log:       log,
	})
	if err != nil {
		return err
	}

	app, err := app.New(ctx, cfg.Pipeline)
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}

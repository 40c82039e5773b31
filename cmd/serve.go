package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/greeter/app"
	"github.com/lambda-feedback/greeter/app/standalone"
	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/util/conf"
	"github.com/lambda-feedback/greeter/util/logging"
)

var (
	serveCmdDescription = `The serve command starts the http server and blocks until
it is interrupted, answering requests for the static site,
the greeting endpoint and user profiles.

This is also what runs when no command is given.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags:       concatFlags(httpFlags, pipelineFlags),
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  standalone.DefaultConfig,
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

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}

package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/greeter/internal/pipeline"
	"github.com/lambda-feedback/greeter/internal/server"
)

var (
	httpFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "host",
			Aliases:  []string{"H"},
			Usage:    "The host to listen on. Empty listens on all interfaces.",
			Category: "http",
			EnvVars:  []string{"HTTP_HOST"},
		},
		&cli.IntFlag{
			Name:     "port",
			Aliases:  []string{"P"},
			Usage:    "The port to listen on.",
			Value:    server.DefaultPort,
			Category: "http",
			EnvVars:  []string{"PORT"},
		},
		&cli.BoolFlag{
			Name:     "h2c",
			Usage:    "Enable HTTP/2 cleartext upgrade.",
			Value:    false,
			Category: "http",
			EnvVars:  []string{"HTTP_H2C"},
		},
	}

	pipelineFlags = []cli.Flag{
		&cli.PathFlag{
			Name:     "public-dir",
			Usage:    "The directory of static assets to serve.",
			Value:    pipeline.DefaultPublicDir,
			Category: "pipeline",
			EnvVars:  []string{"PUBLIC_DIR"},
		},
		&cli.Int64Flag{
			Name:     "max-body-bytes",
			Usage:    "The largest JSON request body accepted, in bytes.",
			Value:    pipeline.DefaultMaxBodyBytes,
			Category: "pipeline",
			EnvVars:  []string{"MAX_BODY_BYTES"},
		},
	}

	lambdaFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "lambda-proxy-source",
			Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
			Value:    "API_GW_V2",
			EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
			Category: "lambda",
		},
	}
)

func concatFlags(flags ...[]cli.Flag) []cli.Flag {
	var all []cli.Flag
	for _, f := range flags {
		all = append(all, f...)
	}

	return all
}

package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/greeter/util/logging"
)

var (
	runCmdDescription = `The run command detects the execution environment from the
environment variables and starts the service accordingly.

If the AWS_LAMBDA_RUNTIME_API environment variable is set,
the AWS Lambda handler is started, matching the behaviour
of the lambda command.

Otherwise, the standalone http server is started.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start the service.",
		Description: runCmdDescription,
		Action:      runAction,
		Flags:       concatFlags(httpFlags, pipelineFlags, lambdaFlags),
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda environment")
		return lambdaAction(ctx)
	}

	log.Info("detected standalone environment")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API")
	return ok && env != ""
}

func init() {
	rootApp.Commands = append(rootApp.Commands, runCmd)
}

package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/internal/server"
	"github.com/lambda-feedback/greeter/util/logging"
)

// Module serves the pipeline over HTTP until the shell stops.
func Module(config Config) fx.Option {
	return logging.Module("serve",
		server.Module(config.HttpConfig),
	)
}

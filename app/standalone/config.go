package standalone

import (
	"github.com/lambda-feedback/greeter/internal/pipeline"
	"github.com/lambda-feedback/greeter/internal/server"
	"github.com/lambda-feedback/greeter/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`

	// Pipeline represents the configuration for request handling.
	Pipeline pipeline.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"port":           server.DefaultPort,
	"public_dir":     pipeline.DefaultPublicDir,
	"max_body_bytes": pipeline.DefaultMaxBodyBytes,
}

package config

import "github.com/lambda-feedback/greeter/util/conf"

// EnvPrefix is the prefix of environment variables read into the config,
// besides those bound to cli flags.
const EnvPrefix = "GREETER_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}

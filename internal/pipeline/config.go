package pipeline

const (
	// DefaultPublicDir is the asset root used when none is configured.
	DefaultPublicDir = "public"

	// DefaultMaxBodyBytes bounds JSON request bodies.
	DefaultMaxBodyBytes int64 = 100 << 10
)

type Config struct {
	// PublicDir is the directory served read-only by the static stage.
	PublicDir string `conf:"public_dir"`

	// MaxBodyBytes is the largest JSON body the body parser accepts.
	MaxBodyBytes int64 `conf:"max_body_bytes"`
}

func (c Config) withDefaults() Config {
	if c.PublicDir == "" {
		c.PublicDir = DefaultPublicDir
	}

	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return c
}

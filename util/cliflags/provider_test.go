package cliflags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestProvider_SetFlagsOnly(t *testing.T) {
	var got map[string]any

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 3000},
			&cli.StringFlag{Name: "public-dir"},
			&cli.BoolFlag{Name: "h2c"},
			&cli.UintFlag{Name: "workers"},
			&cli.StringFlag{Name: "log.level"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			got, err = Provider(ctx, ".", func(s string) string {
				return strings.ReplaceAll(s, "-", "_")
			}).Read()
			return err
		},
	}

	require.NoError(t, app.Run([]string{
		"greeter", "--port", "8080", "--public-dir", "static", "--workers", "4", "--log.level", "debug",
	}))

	assert.Equal(t, 8080, got["port"])
	assert.Equal(t, "static", got["public_dir"])
	assert.Equal(t, map[string]any{"level": "debug"}, got["log"])
	assert.NotContains(t, got, "h2c")
	assert.NotContains(t, got, "workers")
}

func TestProvider_EnvSetFlags(t *testing.T) {
	t.Setenv("GREETER_CLIFLAGS_PORT", "4000")

	var got map[string]any

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 3000, EnvVars: []string{"GREETER_CLIFLAGS_PORT"}},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			got, err = Provider(ctx, "", nil).Read()
			return err
		},
	}

	require.NoError(t, app.Run([]string{"greeter"}))

	assert.Equal(t, 4000, got["port"])
}

func TestProvider_ReadBytesUnsupported(t *testing.T) {
	_, err := (&Flags{}).ReadBytes()
	assert.ErrorIs(t, err, errReadBytes)
}

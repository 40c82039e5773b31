// Package cliflags exposes the flags set on a urfave/cli context as a
// koanf provider, the last and strongest config layer.
package cliflags

import (
	"errors"

	"github.com/knadh/koanf/maps"
	"github.com/urfave/cli/v2"
)

var errReadBytes = errors.New("cliflags: provider has no byte representation")

// Flags holds the values of the flags set on a cli context.
type Flags struct {
	values map[string]any
}

// Provider collects every flag set on ctx, on the command line or through
// its env vars. Keys are primary flag names passed through rename, if
// given. With a non-empty delim the keys are unflattened into nested maps.
// Flags of unsupported types are skipped.
func Provider(ctx *cli.Context, delim string, rename func(string) string) *Flags {
	known := visibleFlags(ctx)

	values := make(map[string]any)
	for _, name := range ctx.FlagNames() {
		flag, ok := known[name]
		if !ok {
			continue
		}

		value, ok := flagValue(ctx, flag)
		if !ok {
			continue
		}

		key := name
		if rename != nil {
			key = rename(name)
		}
		values[key] = value
	}

	if delim != "" {
		values = maps.Unflatten(values, delim)
	}

	return &Flags{values: values}
}

// ReadBytes always fails, Flags only provides a map.
func (f *Flags) ReadBytes() ([]byte, error) {
	return nil, errReadBytes
}

func (f *Flags) Read() (map[string]any, error) {
	return f.values, nil
}

// visibleFlags indexes the flags of the app and of the running command by
// primary name.
func visibleFlags(ctx *cli.Context) map[string]cli.Flag {
	flags := make(map[string]cli.Flag)

	add := func(list []cli.Flag) {
		for _, flag := range list {
			flags[flag.Names()[0]] = flag
		}
	}

	add(ctx.App.VisibleFlags())
	if ctx.Command != nil {
		add(ctx.Command.VisibleFlags())
	}

	return flags
}

func flagValue(ctx *cli.Context, flag cli.Flag) (any, bool) {
	name := flag.Names()[0]

	switch flag.(type) {
	case *cli.StringFlag:
		return ctx.String(name), true
	case *cli.PathFlag:
		return ctx.Path(name), true
	case *cli.StringSliceFlag:
		return ctx.StringSlice(name), true
	case *cli.BoolFlag:
		return ctx.Bool(name), true
	case *cli.IntFlag:
		return ctx.Int(name), true
	case *cli.IntSliceFlag:
		return ctx.IntSlice(name), true
	case *cli.Int64Flag:
		return ctx.Int64(name), true
	case *cli.Int64SliceFlag:
		return ctx.Int64Slice(name), true
	case *cli.Float64Flag:
		return ctx.Float64(name), true
	case *cli.Float64SliceFlag:
		return ctx.Float64Slice(name), true
	case *cli.DurationFlag:
		return ctx.Duration(name), true
	default:
		return nil, false
	}
}

package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvFile is the dotenv file loaded when DOTENV_PATH is unset.
const DefaultEnvFile = ".env"

// EnvFileFromEnv returns the dotenv file path, honoring DOTENV_PATH.
func EnvFileFromEnv() string {
	if path := os.Getenv("DOTENV_PATH"); path != "" {
		return path
	}

	return DefaultEnvFile
}

// LoadEnvFile copies the KEY=value pairs of the dotenv file at path into
// the process environment and returns the keys it set. Variables that are
// already set keep their value. A missing file loads nothing.
func LoadEnvFile(path string) ([]string, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), dotenv.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	var loaded []string
	for key, value := range k.All() {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}

		if err := os.Setenv(key, fmt.Sprint(value)); err != nil {
			return loaded, err
		}

		loaded = append(loaded, key)
	}

	sort.Strings(loaded)

	return loaded, nil
}

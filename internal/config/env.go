package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvHost  = "WORKSPACES__HOST"
	EnvToken = "WORKSPACES__TOKEN"

	// EnvFileName is read from the working directory when present.
	EnvFileName = ".env"
)

// Env holds the overrides read from the environment and an optional dotenv
// file. Process environment wins over the file.
type Env struct {
	Host  string
	Token string
}

// LoadEnv reads overrides from the process environment and from path. A
// missing file is not an error.
func LoadEnv(path string) (Env, error) {
	vars := map[string]string{}

	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			parsed, parseErr := godotenv.Parse(f)
			if parseErr != nil {
				return Env{}, fmt.Errorf("failed to parse env file %s: %w", path, parseErr)
			}
			vars = parsed
		case !os.IsNotExist(err):
			return Env{}, fmt.Errorf("failed to open env file %s: %w", path, err)
		}
	}

	lookup := func(name string) string {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
		return vars[name]
	}

	return Env{
		Host:  lookup(EnvHost),
		Token: lookup(EnvToken),
	}, nil
}

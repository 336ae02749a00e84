// Package toml loads pipeline configuration from TOML files.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/teibow"
	"github.com/pelletier/go-toml/v2"
)

// Load reads a config file and returns it merged over the defaults.
// A missing file is not an error: the defaults are returned, so the CLI
// works without any configuration.
func Load(path string) (*teibow.Config, error) {
	cfg := teibow.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

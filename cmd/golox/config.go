package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/loxlang/golox/lox"
)

// Config is the optional golox.toml workbench manifest.
type Config struct {
	Workbench Workbench      `toml:"workbench"`
	Globals   map[string]any `toml:"globals"`
}

// Workbench configures the driver surface.
type Workbench struct {
	Snapshot string `toml:"snapshot"`
}

// LoadConfig parses a golox.toml file. A missing file is not an error;
// the zero config applies.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// GlobalValues converts the [globals] table into runtime values. TOML can
// express the scalar kinds only.
func (c *Config) GlobalValues() (map[string]lox.Value, error) {
	vars := make(map[string]lox.Value, len(c.Globals))
	for name, raw := range c.Globals {
		switch v := raw.(type) {
		case float64:
			vars[name] = lox.NewNumber(v)
		case int64:
			vars[name] = lox.NewNumber(float64(v))
		case string:
			vars[name] = lox.NewText(v)
		case bool:
			vars[name] = lox.NewBool(v)
		default:
			return nil, fmt.Errorf("global %q: unsupported type %T", name, raw)
		}
	}
	return vars, nil
}

// Apply seeds the session with the configured globals.
func (c *Config) Apply(s *Session) error {
	vars, err := c.GlobalValues()
	if err != nil {
		return err
	}
	for name, val := range vars {
		s.Define(name, val)
	}
	return nil
}

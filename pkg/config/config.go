// Package config loads project-level bunx-ray settings.
//
// Settings live in the project directory in one of these files, checked in
// order:
//
//	.bunxrayrc.json       JSON, comments and trailing commas allowed
//	bunxray.config.json   JSON, comments and trailing commas allowed
//	bunxray.toml          TOML
//	.bunxrayrc.yaml       YAML
//	.bunxrayrc.yml        YAML
//
// The first file found wins; files are never merged. Every field is optional
// and command-line flags override whatever the file sets.
//
// Example .bunxrayrc.json:
//
//	{
//	  // analyse the production build
//	  "stats": "dist/stats.json",
//	  "format": "webpack",
//	  "top": 15,
//	  "size": "50KB",
//	  "totalSize": "500KB",
//	}
package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/jpatterson933/bunx-ray/pkg/budget"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
	"github.com/jpatterson933/bunx-ray/pkg/stats"
)

// Config holds project defaults. Nil pointers and empty strings mean unset.
type Config struct {
	Stats     string `json:"stats" toml:"stats" yaml:"stats"`
	Format    string `json:"format" toml:"format" yaml:"format"`
	Top       *int   `json:"top" toml:"top" yaml:"top"`
	Labels    *bool  `json:"labels" toml:"labels" yaml:"labels"`
	Size      string `json:"size" toml:"size" yaml:"size"`
	TotalSize string `json:"totalSize" toml:"totalSize" yaml:"totalSize"`
	Cols      *int   `json:"cols" toml:"cols" yaml:"cols"`
	Rows      *int   `json:"rows" toml:"rows" yaml:"rows"`
}

type decoder func(data []byte, v any) error

// FileNames lists the recognised config files in lookup order.
var FileNames = []string{
	".bunxrayrc.json",
	"bunxray.config.json",
	"bunxray.toml",
	".bunxrayrc.yaml",
	".bunxrayrc.yml",
}

var decoders = map[string]decoder{
	".json": decodeJSONC,
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

// Load finds and parses the first config file in dir. It returns the config
// and the path it came from, or nil and "" when dir has no config file.
// A file that cannot be parsed or fails [Config.Validate] is an error.
func Load(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read %s", path)
		}

		cfg, err := Parse(name, data)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return nil, "", nil
}

// Parse decodes data using the format implied by name's extension and
// validates the result.
func Parse(name string, data []byte) (*Config, error) {
	decode, ok := decoders[filepath.Ext(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config file %s", name)
	}

	var cfg Config
	if err := decode(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config in %s", name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeJSONC(data []byte, v any) error {
	return json.Unmarshal(jsonc.ToJSON(data), v)
}

// Validate checks field values. Format must name a known bundler, numbers
// must not be negative and sizes must parse.
func (c *Config) Validate() error {
	if c.Format != "" {
		f, err := stats.ParseFormat(c.Format)
		if err != nil || f == stats.FormatAuto {
			return errors.New(errors.ErrCodeInvalidConfig,
				"format must be one of webpack, vite, rollup, esbuild, tsup; got %q", c.Format)
		}
	}
	for _, n := range []struct {
		name string
		v    *int
	}{{"top", c.Top}, {"cols", c.Cols}, {"rows", c.Rows}} {
		if n.v != nil && *n.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %d", n.name, *n.v)
		}
	}
	for _, s := range []struct{ name, v string }{{"size", c.Size}, {"totalSize", c.TotalSize}} {
		if s.v == "" {
			continue
		}
		if _, err := budget.ParseSize(s.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s", s.name)
		}
	}
	return nil
}

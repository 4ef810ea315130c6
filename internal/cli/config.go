package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/pipeline"
	"github.com/matzehuels/framewright/pkg/selection"
)

// configFile is the file name looked up in the config directory.
const configFile = "config.toml"

// Config is the optional TOML configuration file.
//
//	offset = 1.5
//	views = ["elevation", "plan"]
//	template = "tpl-elevation"
//
//	[sheets]
//	prefix = "EL"
//	position = [-0.85, 0.65]
//
//	[groups]
//	"Openings" = ["Doors", "Windows"]
type Config struct {
	Offset      *float64            `toml:"offset"`
	DepthOffset *float64            `toml:"depth_offset"`
	Views       []string            `toml:"views"`
	Template    string              `toml:"template"`
	Sheets      SheetConfig         `toml:"sheets"`
	Groups      map[string][]string `toml:"groups"`
}

// SheetConfig holds sheet numbering and placement settings.
type SheetConfig struct {
	Skip     bool      `toml:"skip"`
	Prefix   string    `toml:"prefix"`
	Position []float64 `toml:"position"`
}

// configDir returns the config directory using XDG standard (~/.config/framewright/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config at path. An empty path means the default
// location, where a missing file is not an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if n := len(c.Sheets.Position); n != 0 && n != 2 && n != 3 {
		return errors.New(errors.ErrCodeInvalidConfig, "sheets.position needs 2 or 3 values, got %d", n)
	}
	for label, tags := range c.Groups {
		if len(tags) == 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "group %q is empty", label)
		}
	}
	return nil
}

// groups returns the built-in groups with the configured ones merged in.
func (c *Config) groups() selection.Groups {
	return selection.DefaultGroups().Merge(selection.Groups(c.Groups))
}

// options returns pipeline options from the config. Unset values stay nil
// or empty and pick up the pipeline defaults.
func (c *Config) options() pipeline.Options {
	opts := pipeline.Options{
		Offset:      c.Offset,
		DepthOffset: c.DepthOffset,
		Views:       c.Views,
		TemplateID:  model.ID(c.Template),
		SkipSheets:  c.Sheets.Skip,
		SheetPrefix: c.Sheets.Prefix,
	}
	if p := c.Sheets.Position; len(p) >= 2 {
		pos := geom.Vec(p[0], p[1], 0)
		if len(p) == 3 {
			pos.Z = p[2]
		}
		opts.SheetPosition = &pos
	}
	return opts
}

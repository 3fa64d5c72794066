package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/math4tots-misc/slumber/frontend/sema"
)

// ConfigFile is the project file looked up in the project directory.
const ConfigFile = "bb.toml"

type Config struct {
	Name     string         `toml:"name" validate:"required"`
	Version  string         `toml:"version" validate:"required"`
	Sources  []string       `toml:"sources" validate:"min=1,dive,required"`
	Std      bool           `toml:"std"`
	Annotate AnnotateConfig `toml:"annotate"`
}

type AnnotateConfig struct {
	BlockScopes bool `toml:"block_scopes"`
	Workers     int  `toml:"workers" validate:"gte=0,lte=64"`
}

// DefaultConfig is what `bbc new` writes.
func DefaultConfig(name string) Config {
	return Config{
		Name:    name,
		Version: "0.1.0",
		Sources: []string{"src"},
		Std:     true,
	}
}

var validate = validator.New()

// ParseConfig decodes and validates a bb.toml. Keys that are absent keep
// their defaults.
func ParseConfig(content string) (Config, error) {
	cfg := Config{Sources: []string{"src"}, Std: true}
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads dir/bb.toml.
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(string(content))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c Config) Options() sema.Options {
	return sema.Options{BlockScopes: c.Annotate.BlockScopes}
}

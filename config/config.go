// Package config loads the optional tool configuration. TOML and YAML are
// both accepted, chosen by file extension; a missing config file simply
// yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config carries the CLI defaults. Command-line flags override every field.
type Config struct {
	Grammar string `toml:"grammar" yaml:"grammar"`
	Tree    bool   `toml:"tree" yaml:"tree"`
	Format  string `toml:"format" yaml:"format"`
}

// Default returns the built-in configuration: the conventional grammar file
// name and a colored text tree.
func Default() Config {
	return Config{
		Grammar: "gra.txt",
		Tree:    true,
		Format:  "text",
	}
}

// Load reads a config file, layering its values over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}
	return cfg, nil
}

var discoverNames = []string{"arbol.toml", "arbol.yaml", "arbol.yml"}

// Discover looks for a config file in dir, trying the known names in
// order. found is false when none exists.
func Discover(dir string) (cfg Config, found bool, err error) {
	for _, name := range discoverNames {
		path := filepath.Join(dir, name)
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err = Load(path)
		return cfg, true, err
	}
	return Default(), false, nil
}

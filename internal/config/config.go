// Package config holds the generator configuration shared by variant rules
// and the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the generator configuration.
type Config struct {
	// Separators are the accepted class-token separator strings, in match
	// order. Variant rules consume exactly one of these after a recognized
	// prefix.
	Separators []string `json:"separators" yaml:"separators"`

	// Content lists glob patterns for the source files to scan for class
	// tokens. Supports ** via doublestar.
	Content []string `json:"content" yaml:"content"`
}

// DefaultSeparators returns the separator list used when none is configured.
func DefaultSeparators() []string {
	return []string{":", "-"}
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{Separators: DefaultSeparators()}
}

// Load reads a configuration file. `.yaml`/`.yml` files are parsed as YAML,
// everything else as JSON with comments allowed. Missing or empty fields fall
// back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if len(cfg.Separators) == 0 {
		cfg.Separators = DefaultSeparators()
	}
	return cfg, nil
}

// ContentFiles expands the content globs into a sorted, de-duplicated list of
// file paths. Patterns that match nothing contribute nothing; a malformed
// pattern is an error.
func (c *Config) ContentFiles() ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range c.Content {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid content pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

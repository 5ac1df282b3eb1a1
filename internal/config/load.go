package config

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration. If path is set only that file is read.
// Otherwise the global configuration and any configuration file in cwd are
// merged, with the local file taking precedence. Environment variables
// override file values.
func Load(cwd, path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = loadFile(path)
	} else {
		cfg, err = loadFromConfigPaths(lookupConfigs(cwd))
	}
	if err != nil {
		return nil, err
	}

	if len(cfg.Items) == 0 && cfg.Viewport.IsZero() {
		defaults := Default()
		cfg.Items = defaults.Items
		cfg.Viewport = defaults.Viewport
	}

	cfg.setDefaults()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Debug("Configuration loaded", "items", len(cfg.Items), "viewport", cfg.Viewport)
	return cfg, nil
}

// lookupConfigs returns the configuration paths in increasing order of
// precedence.
func lookupConfigs(cwd string) []string {
	paths := []string{
		filepath.Join(configDir(), appName+".yaml"),
		filepath.Join(configDir(), appName+".json"),
	}
	for _, name := range []string{appName + ".yaml", appName + ".yml", "." + appName + ".yaml", appName + ".json"} {
		paths = append(paths, filepath.Join(cwd, name))
	}
	return paths
}

// loadFromConfigPaths reads and merges every existing file in paths.
func loadFromConfigPaths(paths []string) (*Config, error) {
	cfg := &Config{}
	for _, path := range paths {
		c, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cfg.merge(c)
	}
	return cfg, nil
}

// loadFile decodes the file at path based on its extension. YAML is assumed
// for unknown extensions.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// merge applies the values set in other on top of c.
func (c *Config) merge(other *Config) {
	if !other.Viewport.IsZero() {
		c.Viewport = other.Viewport
	}
	if len(other.Items) > 0 {
		c.Items = other.Items
	}
	if other.Options != nil {
		if c.Options == nil {
			c.Options = &Options{}
		}
		c.Options.Debug = c.Options.Debug || other.Options.Debug
		c.Options.LogFile = cmp.Or(other.Options.LogFile, c.Options.LogFile)
	}
}

// applyEnv applies the VLIST_* environment variables.
func applyEnv(cfg *Config) {
	if v, err := strconv.ParseBool(os.Getenv("VLIST_DEBUG")); err == nil {
		cfg.Options.Debug = v
	}
	cfg.Options.LogFile = cmp.Or(os.Getenv("VLIST_LOG_FILE"), cfg.Options.LogFile)
}

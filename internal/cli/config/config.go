// Package config loads docshift configuration from file, environment
// variables, and command-line flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "docshift.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "docshift.yml"

// envPrefix is the prefix for environment variable overrides
// (DOCSHIFT_PAGES_DIR, DOCSHIFT_WORKERS, ...).
const envPrefix = "DOCSHIFT_"

// Config holds all configuration options.
type Config struct {
	PagesDir     string   `koanf:"pages_dir"`
	OutDir       string   `koanf:"out_dir"` // empty = rewrite in place
	Include      []string `koanf:"include"` // filename globs
	Exclude      []string `koanf:"exclude"` // relative-path globs
	Workers      int      `koanf:"workers"`
	Verify       bool     `koanf:"verify"`
	FailFast     bool     `koanf:"fail_fast"`
	Verbose      bool     `koanf:"verbose"`
	OutputFormat string   `koanf:"output"`
}

// Default configuration values.
const (
	DefaultPagesDir = "pages"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultInclude is the default set of page filename globs.
var DefaultInclude = []string{"*.js", "*.jsx"}

// configFileUsed records the config file loaded by the last Load call.
var configFileUsed string

// Load loads configuration. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"pages_dir": DefaultPagesDir,
		"include":   DefaultInclude,
		"output":    DefaultOutput,
	}, "."), nil); err != nil {
		return nil, err
	}

	// Config file (optional unless explicitly requested)
	configFileUsed = ""
	path := findConfigFile(cfgFile)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		configFileUsed = path
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file %s not found", cfgFile)
	}

	// Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, err
	}

	// Flags (highest precedence); flag names use dashes, keys underscores
	if flags != nil {
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if len(cfg.Include) == 0 {
		cfg.Include = DefaultInclude
	}

	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file loaded by the most
// recent Load call, or empty when none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// findConfigFile finds the config file to use.
// Priority: explicit path > docshift.yaml > docshift.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}

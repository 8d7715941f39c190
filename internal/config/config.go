package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/scriptdoc/internal/buildmeta"
	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "scriptdoc.yaml"

// ErrConfigExists is returned by Init when the target file already exists.
var ErrConfigExists = errors.New("configuration file already exists")

// Config represents the application configuration
type Config struct {
	Scripts       ScriptsConfig `yaml:"scripts"`
	Output        OutputConfig  `yaml:"output"`
	BuildMetadata string        `yaml:"build_metadata"`
	Site          SiteConfig    `yaml:"site"`
}

// ScriptsConfig describes the script tree to scan
type ScriptsConfig struct {
	Root        string   `yaml:"root"`
	IncludeRoot string   `yaml:"include_root"`      // Prefix used in generated include directives
	Exclude     []string `yaml:"exclude,omitempty"` // Globs relative to root, ** supported
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	SiteFile  string `yaml:"site_file,omitempty"` // Where `scriptdoc site` writes the engine configuration
}

// Load loads configuration from the specified file. A missing file is not an
// error: the defaults describe the conventional project layout.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		slog.Debug("Loaded configuration", logfields.Config(configPath))
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("Configuration file not found, using defaults", logfields.Config(configPath))
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	resolveVersion(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration with every default applied and no version lookup.
func Default() *Config {
	cfg := &Config{}
	// Defaults on an empty config cannot fail.
	_ = applyDefaults(cfg)
	return cfg
}

// resolveVersion fills the site version from build metadata when not configured.
func resolveVersion(cfg *Config) {
	if cfg.Site.Version == "" {
		cfg.Site.Version = buildmeta.ReadVersion(cfg.BuildMetadata)
		slog.Debug("Resolved project version", logfields.Version(cfg.Site.Version), logfields.Path(cfg.BuildMetadata))
	}
	if cfg.Site.Release == "" {
		cfg.Site.Release = cfg.Site.Version
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, configPath)
	}

	example := Default()
	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

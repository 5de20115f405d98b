// Package config loads wren.yaml.
//
// Values are layered: built-in defaults, then the YAML file, then
// environment variables prefixed with WREN_ (nested keys joined by an
// underscore, e.g. WREN_ANALYSIS_WORKERS). A .env file next to the
// configuration is loaded into the environment first; variables that are
// already set take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file wren looks for in the project root
const FileName = "wren.yaml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "WREN"

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Output formats
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config represents wren.yaml configuration
type Config struct {
	Project  ProjectConfig  `yaml:"project" mapstructure:"project"`
	Source   SourceConfig   `yaml:"source" mapstructure:"source"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ProjectConfig holds project metadata
type ProjectConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
}

// SourceConfig selects the files to analyze
type SourceConfig struct {
	Extensions []string `yaml:"extensions" mapstructure:"extensions"`
	IgnoreDirs []string `yaml:"ignore_dirs" mapstructure:"ignore_dirs"`
}

// AnalysisConfig tunes the analyzer
type AnalysisConfig struct {
	// Workers is the size of the parse pool. Zero means one per CPU.
	Workers int `yaml:"workers" mapstructure:"workers"`

	// Decorator is the decorator that marks a reactive property
	Decorator string `yaml:"decorator" mapstructure:"decorator"`

	// BaseClasses are extra superclass names that mark a reactive element
	BaseClasses []string `yaml:"base_classes" mapstructure:"base_classes"`

	// CacheSize bounds the per-file result cache. Zero disables it.
	CacheSize int `yaml:"cache_size" mapstructure:"cache_size"`
}

// OutputConfig defines report output
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// LogConfig sets the log level
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Extensions: []string{".ts", ".tsx", ".mts", ".js", ".mjs"},
			IgnoreDirs: []string{"node_modules", ".git", "dist", "build", "coverage"},
		},
		Analysis: AnalysisConfig{
			Decorator: "property",
			CacheSize: 1024,
		},
		Output: OutputConfig{
			Format: FormatJSON,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads wren.yaml from dir. A missing file yields the defaults with
// environment overrides applied.
func Load(dir string) (*Config, error) {
	if err := loadDotEnv(dir); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s: %w", FileName, err)
		}
	}
	return decode(v)
}

// LoadFile reads the configuration at path, which must exist
func LoadFile(path string) (*Config, error) {
	if err := loadDotEnv(filepath.Dir(path)); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return decode(v)
}

func loadDotEnv(dir string) error {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading .env: %w", err)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register every key so env overrides reach Unmarshal.
	d := DefaultConfig()
	v.SetDefault("project.name", d.Project.Name)
	v.SetDefault("source.extensions", d.Source.Extensions)
	v.SetDefault("source.ignore_dirs", d.Source.IgnoreDirs)
	v.SetDefault("analysis.workers", d.Analysis.Workers)
	v.SetDefault("analysis.decorator", d.Analysis.Decorator)
	v.SetDefault("analysis.base_classes", d.Analysis.BaseClasses)
	v.SetDefault("analysis.cache_size", d.Analysis.CacheSize)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("log.level", d.Log.Level)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first problem found, wrapped in ErrInvalid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("%w: output.format %q (want json, yaml, markdown or html)", ErrInvalid, c.Output.Format)
	}
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("%w: analysis.workers must not be negative", ErrInvalid)
	}
	if c.Analysis.CacheSize < 0 {
		return fmt.Errorf("%w: analysis.cache_size must not be negative", ErrInvalid)
	}
	if !isIdentifier(c.Analysis.Decorator) {
		return fmt.Errorf("%w: analysis.decorator %q is not an identifier", ErrInvalid, c.Analysis.Decorator)
	}
	for _, ext := range c.Source.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: source.extensions entry %q must start with a dot", ErrInvalid, ext)
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// SaveConfig writes configuration to a YAML file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Package config loads generator settings from model-generator.yaml, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"

	"model-generator/internal/gen"
)

// EnvPrefix prefixes every environment override, e.g. MODELGEN_OUTPUT_DIR.
const EnvPrefix = "MODELGEN"

// FileName is the configuration file looked up in the working directory.
const FileName = "model-generator"

// Keys of the configuration.
const (
	KeyModule      = "module"
	KeyEntitiesDir = "entities_dir"
	KeyDTODir      = "dtos_dir"
	KeyExtension   = "extension"
	KeySchemaDir   = "schema_dir"
	KeyPattern     = "pattern"
	KeyOutputDir   = "output_dir"
	KeyWorkers     = "workers"
	KeyLogLevel    = "log_level"
	KeyCacheSize   = "cache_size"
	KeyDebugDir    = "debug_dir"
)

// DefaultPattern matches model documents at any depth.
const DefaultPattern = "**/*.model.xml"

// Config holds the generator settings.
type Config struct {
	// Module is the Go module path generated packages live in.
	Module string `mapstructure:"module"`
	// EntitiesDir is the entities package directory below OutputDir.
	EntitiesDir string `mapstructure:"entities_dir"`
	// DTODir is the DTO package directory below OutputDir.
	DTODir string `mapstructure:"dtos_dir"`
	// Extension is the suffix of generated file names.
	Extension string `mapstructure:"extension"`
	// SchemaDir is searched for model documents.
	SchemaDir string `mapstructure:"schema_dir"`
	// Pattern selects model documents below SchemaDir.
	Pattern string `mapstructure:"pattern"`
	// OutputDir is the root generated files are written to.
	OutputDir string `mapstructure:"output_dir"`
	// Workers bounds concurrent compilation.
	Workers int `mapstructure:"workers"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// CacheSize bounds the number of units watch mode remembers.
	CacheSize int `mapstructure:"cache_size"`
	// DebugDir receives sources that failed formatting.
	DebugDir string `mapstructure:"debug_dir"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyModule, gen.DefaultModule)
	v.SetDefault(KeyEntitiesDir, gen.DefaultEntitiesDir)
	v.SetDefault(KeyDTODir, gen.DefaultDTODir)
	v.SetDefault(KeyExtension, gen.DefaultExtension)
	v.SetDefault(KeySchemaDir, ".")
	v.SetDefault(KeyPattern, DefaultPattern)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCacheSize, 256)
	v.SetDefault(KeyDebugDir, "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v
}

// Load reads the configuration. An explicit file must exist; otherwise
// model-generator.yaml in the working directory is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings for values the generator cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Module) == "" {
		errs = append(errs, errors.New("module must not be empty"))
	}

	if c.Extension == "" || strings.ContainsAny(c.Extension, `/\`) {
		errs = append(errs, fmt.Errorf("invalid extension %q", c.Extension))
	}

	if !doublestar.ValidatePattern(c.Pattern) {
		errs = append(errs, fmt.Errorf("invalid pattern %q", c.Pattern))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	if c.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("cache_size must be positive, got %d", c.CacheSize))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return level, nil
}

// Generator returns the code generation settings.
func (c *Config) Generator() gen.Config {
	g := gen.NewConfig(c.Module, c.EntitiesDir, c.DTODir)
	g.Extension = c.Extension
	g.DebugDir = c.DebugDir

	return g
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/ssap-go/ssap"
)

// Config holds the ssapdecode configuration.
type Config struct {
	OutputFormat   string `yaml:"output_format" json:"output_format"`
	LogLevel       string `yaml:"log_level" json:"log_level"`
	AllProperties  bool   `yaml:"all_properties" json:"all_properties"`
	RejectOverlong bool   `yaml:"reject_overlong" json:"reject_overlong"`
	// Strict turns every recoverable decode warning into a failure.
	Strict   bool `yaml:"strict" json:"strict"`
	MaxItems int  `yaml:"max_items" json:"max_items"`
	MaxDepth int  `yaml:"max_depth" json:"max_depth"`

	Limits ssap.Limits `yaml:"limits" json:"limits"`

	// JSONLDContext compacts jsonld output when set.
	JSONLDContext map[string]interface{} `yaml:"jsonld_context" json:"jsonld_context"`
}

// Formats lists the accepted output_format values.
var Formats = []string{"table", "json", "yaml", "ntriples", "jsonld"}

// DefaultPath returns the default config file path: ~/.ssap/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ssap", "config.yaml")
	}
	return filepath.Join(home, ".ssap", "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		OutputFormat: "table",
		LogLevel:     "warn",
		MaxItems:     ssap.DefaultMaxItems,
		Limits:       ssap.DefaultLimits(),
	}
}

// Load reads the configuration from the given YAML file path.
// If the file does not exist, it returns the default Config with no error.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the output format and log level.
func (c *Config) Validate() error {
	if !validFormat(c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.OutputFormat, strings.Join(Formats, ", "))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// Logger builds a console logger writing to stderr at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// DecoderOptions translates the configuration into decoder options.
func (c *Config) DecoderOptions(logger *zap.Logger) []ssap.Option {
	opts := []ssap.Option{
		ssap.OptLimits(c.Limits),
		ssap.OptMaxItems(c.MaxItems),
		ssap.OptMaxDepth(c.MaxDepth),
		ssap.OptLogger(logger),
	}
	if c.AllProperties {
		opts = append(opts, ssap.OptAllProperties())
	}
	if c.RejectOverlong {
		opts = append(opts, ssap.OptRejectOverlong())
	}
	return opts
}

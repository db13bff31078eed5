package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatText  = "text"
)

// Config represents the stmtparse.yaml configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// ParserConfig controls row normalization policy.
type ParserConfig struct {
	// StrictDates drops rows with unparseable dates instead of dating them today.
	StrictDates bool `yaml:"strict_dates"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "table" or "json"
}

// Load reads a stmtparse.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{StrictDates: false},
		Log:    LogConfig{Level: "warn", Format: FormatText},
		Output: OutputConfig{Format: FormatTable},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: want %s or %s", c.Log.Format, FormatText, FormatJSON)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q: want %s or %s", c.Output.Format, FormatTable, FormatJSON)
	}
	return nil
}

// NewLogger builds a logrus logger writing to w per the log settings.
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	if c.Log.Format == FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l, nil
}

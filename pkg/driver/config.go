// Package driver loads the REPL configuration file.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no
// explicit path is given.
const DefaultConfigFile = "calc.yml"

// Config holds the REPL settings from calc.yml.
type Config struct {
	Path string

	// Prompt precedes every input line.
	Prompt string
	// Color enables colored output.
	Color bool
	// Startup lines are evaluated before the first prompt, in order.
	Startup []string
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Prompt: "=> ",
		Color:  true,
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Prompt  *string  `yaml:"prompt"`
	Color   *bool    `yaml:"color"`
	Startup []string `yaml:"startup"`
}

// LoadConfig parses the config file at path, returning validated
// settings. Absent fields keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := decodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	cfg.Path = absPath
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeConfig(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.Color != nil {
		cfg.Color = *raw.Color
	}
	cfg.Startup = raw.Startup
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ValidationError
	if strings.ContainsAny(c.Prompt, "\r\n") {
		errs.Issues = append(errs.Issues, "prompt must not contain newlines")
	}
	for i, line := range c.Startup {
		if strings.TrimSpace(line) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("startup[%d] must be a non-empty line", i))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

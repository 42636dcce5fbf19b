// Package config loads and validates the optional .sheller.yaml file,
// which seeds execution specifications with project-wide defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jbatten/sheller/shell"
)

// DefaultFile is the conventional configuration file name.
const DefaultFile = ".sheller.yaml"

// DefaultInterpreter is used when the file does not name one.
const DefaultInterpreter = "/bin/sh"

// Config holds the parsed configuration. All fields are optional; zero
// values represent defaults.
type Config struct {
	Interpreter    string            `yaml:"interpreter"`      // e.g. /bin/bash
	Args           []string          `yaml:"args"`             // interpreter args, default [-c]
	Dir            string            `yaml:"dir"`              // working directory
	Env            map[string]string `yaml:"env"`              // environment overrides
	RawTimeout     string            `yaml:"timeout"`          // e.g. "5m", "30s"
	RawWaitTimeout string            `yaml:"wait_timeout"`     // bound for the wait phase
	MaxOutput      int               `yaml:"max_output"`       // bytes per stream buffer
	ExpectedExit   *int              `yaml:"expected_exit"`    // success exit code, default 0
	AllowFailure   bool              `yaml:"allow_failure"`    // return non-zero exits instead of failing
}

// Default returns a configuration with all defaults.
func Default() *Config {
	return &Config{Interpreter: DefaultInterpreter}
}

// Load reads and parses the file at path. A missing file yields the default
// configuration; a malformed one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the durations and sizes.
func (c *Config) Validate() error {
	if c.RawTimeout != "" {
		if _, err := time.ParseDuration(c.RawTimeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", c.RawTimeout, err)
		}
	}
	if c.RawWaitTimeout != "" {
		if _, err := time.ParseDuration(c.RawWaitTimeout); err != nil {
			return fmt.Errorf("invalid wait_timeout %q: %w", c.RawWaitTimeout, err)
		}
	}
	if c.MaxOutput < 0 {
		return fmt.Errorf("max_output must be non-negative, got %d", c.MaxOutput)
	}
	return nil
}

// Timeout returns the configured overall timeout, or zero for unbounded.
func (c *Config) Timeout() time.Duration {
	return parseDuration(c.RawTimeout)
}

// WaitTimeout returns the configured wait-phase timeout, or zero.
func (c *Config) WaitTimeout() time.Duration {
	return parseDuration(c.RawWaitTimeout)
}

// Spec builds a specification seeded with the configured defaults. Callers
// derive from it as usual; the configuration itself is never mutated.
func (c *Config) Spec() shell.Spec {
	interp := c.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}
	spec := shell.New(interp, c.Args...)
	if c.Dir != "" {
		spec = spec.WithDir(c.Dir)
	}
	if len(c.Env) > 0 {
		spec = spec.WithEnv(c.Env)
	}
	if d := c.Timeout(); d > 0 {
		spec = spec.WithTimeout(d)
	}
	if d := c.WaitTimeout(); d > 0 {
		spec = spec.WithWaitTimeout(d)
	}
	if c.MaxOutput > 0 {
		spec = spec.WithMaxOutput(c.MaxOutput)
	}
	if c.ExpectedExit != nil {
		spec = spec.WithExpectedExitCode(*c.ExpectedExit)
	}
	if c.AllowFailure {
		spec = spec.AllowFailure()
	}
	return spec
}

func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}

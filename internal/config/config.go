// SPDX-License-Identifier: Apache-2.0

// Package config loads scanner defaults from the environment. CLI
// flags override whatever is loaded here.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the scanner settings that can come from the
// environment (prefix NPMSCAN_) as well as from flags.
type Config struct {
	// ListFile is the path of the compromised-package list.
	ListFile string `koanf:"list_file" validate:"required"`

	// Format selects the report rendering, "text" or "json".
	Format string `koanf:"format" validate:"required,oneof=text json"`

	// FailExitCode is the process exit code used when matches are
	// found, distinct from 1 which signals a tool failure.
	FailExitCode int `koanf:"fail_exit_code" validate:"required,gte=2,lte=255"`

	// LogLevel controls log verbosity: "debug", "info", "warn" or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// NoRunNpm forbids invoking npm; a tree or SBOM input must then be
	// provided explicitly.
	NoRunNpm bool `koanf:"no_run_npm"`
}

// Defaults mirrors the original tool's built-in behavior: text output,
// compromised.txt next to the project, exit code 42 on matches.
var Defaults = Config{
	ListFile:     "compromised.txt",
	Format:       "text",
	FailExitCode: 42,
	LogLevel:     "warn",
}

// Load builds a Config from defaults and NPMSCAN_-prefixed environment
// variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "NPMSCAN_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "NPMSCAN_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration, including values overridden by
// flags after Load.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

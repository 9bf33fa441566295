// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package config loads the configuration of the bursttrie command
// from defaults, an optional config file, BURSTTRIE_ environment
// variables and command line flags, in ascending priority.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix for environment overrides, e.g. BURSTTRIE_MAX_CONTAINER_COST.
const EnvPrefix = "BURSTTRIE"

// Config holds all configuration for the command.
type Config struct {
	MaxContainerCost int      `mapstructure:"max_container_cost"`
	Input            string   `mapstructure:"input"`
	Dump             string   `mapstructure:"dump"`
	LogLevel         string   `mapstructure:"log_level"`
	Lookup           []string `mapstructure:"lookup"`
}

// Flags returns the command line flags, bound to the config keys by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bursttrie", pflag.ContinueOnError)

	fs.String("config", "", "config file (yaml, toml or json)")
	fs.StringP("input", "i", "", "properties file to load")
	fs.Int("max-container-cost", 256, "container cost threshold before bursting")
	fs.String("dump", "", "write the trie dump to this file")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.StringSlice("lookup", nil, "keys to look up after loading, repeatable")

	return fs
}

// Load builds the config from defaults, the config file named by the
// --config flag, the environment and the parsed flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for key, flag := range map[string]string{
		"input":              "input",
		"max_container_cost": "max-container-cost",
		"dump":               "dump",
		"log_level":          "log-level",
		"lookup":             "lookup",
	} {
		if f := fs.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", flag)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("max_container_cost", 256)
	v.SetDefault("input", "")
	v.SetDefault("dump", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("lookup", []string{})
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MaxContainerCost <= 0 {
		return errors.Errorf("max container cost must be positive: %d", c.MaxContainerCost)
	}
	if c.Input == "" {
		return errors.New("input file is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

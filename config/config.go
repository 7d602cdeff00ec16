// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package config holds the settings of the spacelab server.
//
// Settings come from, in increasing order of precedence: built-in
// defaults, a YAML file, environment variables, and command-line
// flags.  This package handles the first three; the server binary
// applies flags that were explicitly given on top.
//
// A YAML file looks like
//
//     database: sqlite:///var/lib/spacelab/app.db
//     http: ":5555"
//     log_level: debug
//     log_file: /var/log/spacelab.log
//     log_requests: true
//     cache_size: 1024
//     metrics_interval: 30s
package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the complete server configuration.
type Config struct {
	// Database is a backend description or database URI, as
	// accepted by backend.Backend.Set.
	Database string `mapstructure:"database" env:"DB_URI"`

	// HTTP is the [ip]:port the REST interface listens on.
	HTTP string `mapstructure:"http" env:"SPACELAB_HTTP"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level" env:"SPACELAB_LOG_LEVEL"`

	// LogFile, if set, sends logs to a rotated file instead of
	// standard error.
	LogFile string `mapstructure:"log_file" env:"SPACELAB_LOG_FILE"`

	// LogRequests logs one line per HTTP request.
	LogRequests bool `mapstructure:"log_requests" env:"SPACELAB_LOG_REQUESTS"`

	// CacheSize, if positive, puts an LRU cache of this many
	// records per type in front of the database.
	CacheSize int `mapstructure:"cache_size" env:"SPACELAB_CACHE_SIZE"`

	// MetricsInterval is how often record counts are refreshed
	// for /metrics.
	MetricsInterval time.Duration `mapstructure:"metrics_interval" env:"SPACELAB_METRICS_INTERVAL"`
}

// Default returns the built-in configuration: a SQLite database in
// app.db in the current directory, served on port 5555.
func Default() Config {
	return Config{
		Database:        "sqlite:///app.db",
		HTTP:            ":5555",
		LogLevel:        "info",
		MetricsInterval: 15 * time.Second,
	}
}

// Load builds a configuration from the defaults, the YAML file
// filename if it is not empty, and then the environment.
func Load(filename string) (Config, error) {
	c := Default()
	if filename != "" {
		if err := c.LoadFile(filename); err != nil {
			return c, err
		}
	}
	if err := c.LoadEnv(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadFile overlays settings from a YAML file.  Keys absent from the
// file leave the current values alone; unknown keys are an error.
func (c *Config) LoadFile(filename string) error {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	if err = c.decode(raw); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return nil
}

// decode overlays settings from a string-keyed map.
func (c *Config) decode(raw map[string]interface{}) error {
	config := mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           c,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(raw)
	}
	return err
}

// LoadEnv overlays settings from environment variables.  Variables
// that are not set leave the current values alone.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

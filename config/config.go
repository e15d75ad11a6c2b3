// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the gltri app.
package config

import (
	"bytes"
	"fmt"
	"os"

	"cogentcore.org/gltri/logx"
	"github.com/pelletier/go-toml/v2"
)

// EnvFile is the environment variable naming a TOML config file.
const EnvFile = "GLTRI_CONFIG"

// Config is the main config struct
// that contains all of the configuration
// options for the gltri app
type Config struct {

	// the width of the window, in screen coordinates
	Width int `toml:"width"`

	// the height of the window, in screen coordinates
	Height int `toml:"height"`

	// the title of the window
	Title string `toml:"title"`

	// whether to draw polygons as lines instead of filled
	Wireframe bool `toml:"wireframe"`

	// whether to wait for the display refresh on each frame
	VSync bool `toml:"vsync"`

	// the log level: debug, info, warn, or error
	LogLevel string `toml:"log_level"`
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		Width:    800,
		Height:   600,
		Title:    "OpenGLTests",
		VSync:    true,
		LogLevel: "info",
	}
}

// Open returns the default config overlaid with the settings
// in the given TOML file. Unknown settings are an error.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config.Open: %w", err)
	}
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", filename, err)
	}
	return cfg, nil
}

// FromEnv returns the config from the file named by [EnvFile],
// or the default config if it is not set.
func FromEnv() (*Config, error) {
	fn := os.Getenv(EnvFile)
	if fn == "" {
		return Default(), nil
	}
	return Open(fn)
}

// Validate checks that the window has a positive size and that
// the log level is known.
func (cfg *Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return logx.CheckLevel(cfg.LogLevel)
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server's small configuration surface. Values come from
// an optional YAML file (HBNB_CONFIG) with environment variables taking
// precedence; everything has a working default.
type Config struct {
	// Host is the bind address. Empty means all interfaces.
	Host string `yaml:"host"`

	// Port is the listen port. Default 5000.
	Port string `yaml:"port"`

	// LogLevel is one of debug, info, warn, error. Default info.
	LogLevel string `yaml:"log_level"`

	// OTLPEndpoint enables trace export when non-empty.
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// loadConfig assembles configuration from defaults, the optional YAML
// file and the environment, in that order.
func loadConfig() (Config, error) {
	cfg := Config{Port: "5000", LogLevel: "info"}

	if path := os.Getenv("HBNB_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("HBNB_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("HBNB_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("HBNB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	return cfg, nil
}

// Addr returns the host:port bind address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

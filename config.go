package main

import (
	"fmt"

	"fortio.org/log"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/globeview/geoloc"
	"github.com/seqsense/globeview/orient"
)

const (
	configPath      = "globe.yaml"
	defaultLogLevel = "info"
)

type appConfig struct {
	LogLevel    string        `yaml:"log_level"`
	Globe       orient.Config `yaml:"globe"`
	Geolocation geoloc.Config `yaml:"geolocation"`
}

func defaultAppConfig() *appConfig {
	return &appConfig{
		LogLevel:    defaultLogLevel,
		Globe:       orient.DefaultConfig(),
		Geolocation: geoloc.DefaultConfig(),
	}
}

// parseConfig overlays the YAML document on the defaults.
func parseConfig(b []byte) (*appConfig, error) {
	c := defaultAppConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if err := c.Globe.Validate(); err != nil {
		return nil, fmt.Errorf("invalid globe config: %w", err)
	}
	if c.Geolocation.Enabled && c.Geolocation.URL == "" {
		return nil, fmt.Errorf("invalid geolocation config: url is empty")
	}
	return c, nil
}

func (c *appConfig) apply() error {
	return log.SetLogLevelStr(c.LogLevel)
}

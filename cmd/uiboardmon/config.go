package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config configures the input monitor.
type Config struct {
	// BrokerURL is the MQTT broker, e.g. mqtt://localhost:1883/uiboard/.
	BrokerURL string `toml:"broker_url"`
	// Topic is the event topic, relative to the broker URL's prefix.
	Topic string `toml:"topic"`
	// PollIntervalMS is how often the board inputs are polled.
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		BrokerURL:      "mqtt://localhost:1883/uiboard/",
		Topic:          "inputs",
		PollIntervalMS: 20,
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse %s: %w", path, err)
	}
	return conf, conf.validate()
}

func (c Config) validate() error {
	if c.BrokerURL == "" {
		return fmt.Errorf("broker_url must not be empty")
	}
	if c.Topic == "" {
		return fmt.Errorf("topic must not be empty")
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive")
	}
	return nil
}

// PollInterval returns the poll interval as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

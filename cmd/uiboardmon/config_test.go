package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uiboardmon.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), conf)
	require.Equal(t, 20*time.Millisecond, conf.PollInterval())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
broker_url = "mqtt://broker.local:1883/bench/"
topic = "board-a/inputs"
poll_interval_ms = 50
`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "mqtt://broker.local:1883/bench/", conf.BrokerURL)
	require.Equal(t, "board-a/inputs", conf.Topic)
	require.Equal(t, 50*time.Millisecond, conf.PollInterval())
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `topic = "left/inputs"`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "left/inputs", conf.Topic)
	require.Equal(t, DefaultConfig().BrokerURL, conf.BrokerURL)
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"zero interval", `poll_interval_ms = 0`},
		{"empty broker", `broker_url = ""`},
		{"empty topic", `topic = ""`},
		{"bad toml", `topic = `},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}
}

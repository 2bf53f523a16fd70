package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		StorageBucket:       "uploads",
		RequestTimeout:      10 * time.Second,
		ChatReplyDelay:      500 * time.Millisecond,
		OnlineCheckInterval: 3 * time.Second,
		LogLevel:            "warn",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "host:1", "-b", "media", "-t", "2s", "-d", "1s", "-i", "7", "-l", "debug"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "host:1", c.ServerEndpointAddr)
				assert.Equal(t, "media", c.StorageBucket)
				assert.Equal(t, 2*time.Second, c.RequestTimeout)
				assert.Equal(t, time.Second, c.ChatReplyDelay)
				assert.Equal(t, 7*time.Second, c.OnlineCheckInterval)
				assert.Equal(t, "debug", c.LogLevel)
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-x", "1", "-a", "host:2"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "host:2", c.ServerEndpointAddr)
				assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
			},
		},
		{name: "bad interval", args: []string{"-i", "soon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.LoadDefaults()
			err := parseFlags(c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "json:1",
		"storage_bucket": "json-bucket",
		"chat_reply_delay": "250ms",
		"online_check_interval": 5000000000
	}`), 0o600))

	c, err := LoadConfig([]string{"-c", path, "-b", "flag-bucket"})
	require.NoError(t, err)

	assert.Equal(t, "json:1", c.ServerEndpointAddr)
	assert.Equal(t, "flag-bucket", c.StorageBucket)
	assert.Equal(t, 250*time.Millisecond, c.ChatReplyDelay)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_BadFile(t *testing.T) {
	_, err := LoadConfig([]string{"-config", filepath.Join(t.TempDir(), "none.json")})
	assert.ErrorContains(t, err, "read config")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"request_timeout": true}`), 0o600))
	_, err = LoadConfig([]string{"-c", bad})
	assert.ErrorContains(t, err, "parse config")
}

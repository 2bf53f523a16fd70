package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/innovatehub/collab/internal/flagx"
	"github.com/innovatehub/collab/internal/timex"
)

// JSONConfig is the on-disk shape of the CLI configuration file.
type JSONConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	StorageBucket       string         `json:"storage_bucket"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	ChatReplyDelay      timex.Duration `json:"chat_reply_delay"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogLevel            string         `json:"log_level"`
}

// parseJSON overlays the file named by -c/-config. Empty or zero fields in
// the file keep the current value.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var c JSONConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.StorageBucket != "" {
		config.StorageBucket = c.StorageBucket
	}
	if c.RequestTimeout.Duration > 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ChatReplyDelay.Duration > 0 {
		config.ChatReplyDelay = c.ChatReplyDelay.Duration
	}
	if c.OnlineCheckInterval.Duration > 0 {
		config.OnlineCheckInterval = c.OnlineCheckInterval.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	return nil
}

package config

import "time"

// Config holds runtime settings for the collab CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - StorageBucket: object storage bucket uploads are written to.
//   - RequestTimeout: upper bound of a single remote call.
//   - ChatReplyDelay: latency of the echo assistant's reply.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	StorageBucket       string
	RequestTimeout      time.Duration
	ChatReplyDelay      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.StorageBucket = "uploads"
	c.RequestTimeout = 10 * time.Second
	c.ChatReplyDelay = 500 * time.Millisecond
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

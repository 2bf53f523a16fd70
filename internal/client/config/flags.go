package config

import (
	"flag"
	"io"
	"time"

	"github.com/innovatehub/collab/internal/flagx"
)

// parseFlags overlays command-line flags onto config. Only the flags listed
// in doc.go are considered; everything else in args is ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-t", "-d", "-i", "-l"})

	fs := flag.NewFlagSet("collab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the server")
	fs.StringVar(&config.StorageBucket, "b", config.StorageBucket, "storage bucket for uploads")
	fs.DurationVar(&config.RequestTimeout, "t", config.RequestTimeout, "request timeout")
	fs.DurationVar(&config.ChatReplyDelay, "d", config.ChatReplyDelay, "chat reply delay")
	onlineCheckInterval := fs.Int("i", int(config.OnlineCheckInterval.Seconds()), "online status check interval (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			config.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}

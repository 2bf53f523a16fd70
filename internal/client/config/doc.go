// Package config loads runtime configuration for the collab CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the backend gRPC endpoint
//	-b string     storage bucket for uploads
//	-t duration   per-request timeout
//	-d duration   chat reply delay
//	-i int        online status check interval (seconds)
//	-l string     log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "storage_bucket": "uploads",
//	  "request_timeout": "10s",
//	  "chat_reply_delay": "500ms",
//	  "online_check_interval": "3s",
//	  "log_level": "warn"
//	}
package config

// Package config loads runtime configuration for the postkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the post service API
//	-d int      search debounce (milliseconds)
//	-t int      request timeout (seconds)
//	-f string   local database file
//	-m string   host:port of the metrics endpoint
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "200ms" or
// integer nanoseconds. Keys missing from the file keep their previous value.
//
//	{
//	  "server_base_url": "http://localhost:3000/server-api",
//	  "search_debounce": "200ms",
//	  "request_timeout": "10s",
//	  "database_dsn": "postkeeper.db",
//	  "metrics_addr": "127.0.0.1:9100",
//	  "log_level": "info"
//	}
package config

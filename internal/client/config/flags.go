package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/postkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed below are considered; everything else in os.Args is ignored.
//
//	-a string   base URL of the post service API
//	-d int      search debounce in milliseconds
//	-t int      request timeout in seconds
//	-f string   local database file
//	-m string   metrics endpoint address
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-f", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the post service API")
	debounce := fs.Int("d", int(cfg.SearchDebounce.Milliseconds()), "search debounce (in milliseconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "f", cfg.DatabaseDSN, "local database file")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics endpoint address (empty disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// durations from the file may be finer than the flag units
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.SearchDebounce = time.Duration(*debounce) * time.Millisecond
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}

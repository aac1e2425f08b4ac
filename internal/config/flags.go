package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/taskman/internal/flagx"
)

// parseFlags overlays cfg with -d, -b, -l and -g from args. Other flags are
// filtered out first so they do not make parsing fail. A malformed value
// panics.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-d", "-b", "-l", "-g"})

	fs := flag.NewFlagSet("taskman", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite data source (file path or :memory:)")
	fs.IntVar(&cfg.BcryptCost, "b", cfg.BcryptCost, "bcrypt work factor")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogBackend, "g", cfg.LogBackend, "log backend: slog or zap")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}

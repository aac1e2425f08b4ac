package config

import "os"

// Config holds runtime settings for taskman.
type Config struct {
	DatabaseDSN string
	BcryptCost  int
	LogLevel    string
	LogBackend  string
	LogFormat   string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "tasks.db"
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, environment, JSON file and
// command-line flags, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:], ".env")
}

func load(args []string, dotenv string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, dotenv)
	parseJSON(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

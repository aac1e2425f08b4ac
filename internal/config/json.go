package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskman/internal/flagx"
)

// JSONConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from a zero value.
type JSONConfig struct {
	DatabaseDSN *string `json:"database_dsn"`
	BcryptCost  *int    `json:"bcrypt_cost"`
	LogLevel    *string `json:"log_level"`
	LogBackend  *string `json:"log_backend"`
	LogFormat   *string `json:"log_format"`
}

// parseJSON overlays cfg with the file named by -c/-config in args. Nothing
// happens when neither flag is given. Read and decode errors panic.
func parseJSON(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.BcryptCost != nil {
		cfg.BcryptCost = *jc.BcryptCost
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envDSN        = "TASKMAN_DSN"
	envBcryptCost = "TASKMAN_BCRYPT_COST"
	envLogLevel   = "TASKMAN_LOG_LEVEL"
	envLogBackend = "TASKMAN_LOG_BACKEND"
	envLogFormat  = "TASKMAN_LOG_FORMAT"
)

// parseEnv overlays cfg with TASKMAN_* variables. Values from the dotenv
// file are used only for keys the process environment does not set. A
// missing dotenv file is fine; an unreadable or malformed one panics.
func parseEnv(cfg *Config, dotenv string) {
	fileVals := map[string]string{}
	if dotenv != "" {
		vals, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			panic(err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	if v, ok := lookup(envDSN); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := lookup(envBcryptCost); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogBackend); ok && v != "" {
		cfg.LogBackend = v
	}
	if v, ok := lookup(envLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
}

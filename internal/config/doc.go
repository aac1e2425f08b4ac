// Package config loads runtime configuration for taskman.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file in the working
//     directory filling in anything the process environment lacks.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything before them.
//
// Environment
//
//	TASKMAN_DSN          SQLite data source (default "tasks.db")
//	TASKMAN_BCRYPT_COST  bcrypt work factor (default 10)
//	TASKMAN_LOG_LEVEL    debug, info, warn or error (default "info")
//	TASKMAN_LOG_BACKEND  slog or zap (default "slog")
//	TASKMAN_LOG_FORMAT   text or json (default "text")
//
// Flags
//
//	-d string   SQLite data source
//	-b int      bcrypt work factor
//	-l string   log level
//	-g string   log backend
//
// # JSON schema
//
// Keys left out of the file keep their earlier value:
//
//	{
//	  "database_dsn": "tasks.db",
//	  "bcrypt_cost": 12,
//	  "log_level": "debug",
//	  "log_backend": "zap",
//	  "log_format": "json"
//	}
//
// Malformed JSON or flags panic, as does an unreadable .env file. A bcrypt
// cost in the environment that is not an integer is ignored.
package config

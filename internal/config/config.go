// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// Backend selects the storage backend: "file", "sqlite", or "postgres".
	Backend string

	// StorePath is the on-device store location (JSON file or sqlite database).
	StorePath string

	// DatabaseDSN holds the PostgreSQL connection string for office deployments.
	DatabaseDSN string

	// Policy selects submission validation: "basic" or "strict".
	Policy string

	// LogLevel sets the zap logging level.
	LogLevel string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.Backend, "b", "file", "storage backend: file | sqlite | postgres")
	flag.StringVar(&options.StorePath, "s", "registry.json", "path to the on-device store")
	flag.StringVar(&options.DatabaseDSN, "d", "", "postgres connection string")
	flag.StringVar(&options.Policy, "p", "basic", "request validation policy: basic | strict")
	flag.StringVar(&options.LogLevel, "l", "Info", "log level")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if backend := os.Getenv("STORE_BACKEND"); backend != "" {
		options.Backend = backend
	}
	if storePath := os.Getenv("STORE_PATH"); storePath != "" {
		options.StorePath = storePath
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if policy := os.Getenv("VALIDATION_POLICY"); policy != "" {
		options.Policy = policy
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	return options
}

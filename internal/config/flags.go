package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base URL
//	-d local database path
//	-t session token
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverBaseURL string
	var databaseDSN string
	var sessionToken string
	var jsonConfigPath string
	var requestTimeout time.Duration

	flag.StringVar(&serverBaseURL, "s", "", "Chat server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&sessionToken, "t", "", "Session bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionToken: sessionToken,
		},
		Adapter: Adapter{
			BaseURL:        serverBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}

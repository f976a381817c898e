package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r remote object-store base URL
//	-d local database path (SQLite file)
//	-t bearer token for the remote store
//	-a devstore listen address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g. "15s")
//	-focus-debounce focus trigger debounce window
//	-data-debounce data-mutation trigger debounce window
//	-min-interval global minimum interval between sync passes
//	-token-sign-key devstore token signing key
//	-token-issuer devstore token issuer name
func ParseFlags() *StructuredConfig {
	var remoteAddress string
	var databaseDSN string
	var remoteToken string
	var serverAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var focusDebounce time.Duration
	var dataDebounce time.Duration
	var minInterval time.Duration
	var tokenSignKey string
	var tokenIssuer string

	flag.StringVar(&remoteAddress, "r", "", "Remote object-store base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&remoteToken, "t", "", "Bearer token for the remote store")
	flag.StringVar(&serverAddress, "a", "", "Devstore listen address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s)")
	flag.DurationVar(&focusDebounce, "focus-debounce", 0, "Focus trigger debounce window")
	flag.DurationVar(&dataDebounce, "data-debounce", 0, "Data-mutation trigger debounce window")
	flag.DurationVar(&minInterval, "min-interval", 0, "Minimum interval between sync passes")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			Address:        remoteAddress,
			RequestTimeout: requestTimeout,
			Token:          remoteToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			FocusDebounce: focusDebounce,
			DataDebounce:  dataDebounce,
			MinInterval:   minInterval,
		},
		Server: Server{
			HTTPAddress:  serverAddress,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		JSONFilePath: jsonConfigPath,
	}
}

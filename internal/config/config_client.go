package config

import (
	"fmt"
	"time"
)

// ClientRemote holds the object-store connection settings used by the client
// transport layer.
type ClientRemote struct {
	// Address is the base URL of the remote object store.
	Address string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the externally provisioned bearer credential; empty means
	// "no authenticated session", which makes the engine skip sync passes.
	Token string
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains scheduler cadence settings for the client.
type ClientSync struct {
	// FocusDebounce is the debounce window for app-foreground triggers.
	FocusDebounce time.Duration
	// DataDebounce is the debounce window for data-mutation triggers.
	DataDebounce time.Duration
	// MinInterval is the global throttle between reconciliation passes.
	MinInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Remote contains object-store transport settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains scheduler cadence settings.
	Sync ClientSync
}

// ServerConfig is the devstore configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the TCP address the devstore listens on.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// TokenSignKey is the secret used to verify bearer tokens.
	TokenSignKey string
	// TokenIssuer is the expected "iss" claim of accepted tokens.
	TokenIssuer string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Remote: ClientRemote{
			Address:        cfg.Remote.Address,
			RequestTimeout: cfg.Remote.RequestTimeout,
			Token:          cfg.Remote.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			FocusDebounce: cfg.Sync.FocusDebounce,
			DataDebounce:  cfg.Sync.DataDebounce,
			MinInterval:   cfg.Sync.MinInterval,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}

// GetServerConfig builds and validates the devstore config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenIssuer:    cfg.Server.TokenIssuer,
	}

	if err = serverCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return serverCfg, nil
}

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself is permissive; the per-role views
// ([ClientConfig], [ServerConfig]) enforce what their runtime needs.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.Address == "" {
		return ErrInvalidRemoteConfigs
	}

	// Zero cadences are allowed: the scheduler substitutes its defaults.
	if cfg.Sync.FocusDebounce < 0 || cfg.Sync.DataDebounce < 0 || cfg.Sync.MinInterval < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// Package client assembles the sync engine's client runtime: configuration,
// logging, the local store, the cloud store transport, and the services on
// top of them.
package client

import (
	"fmt"

	"github.com/pkruglov/notesync/internal/adapter"
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/service"
	"github.com/pkruglov/notesync/internal/store"
)

// App owns every client-side component for one process. Construct it with
// [NewApp], use the exposed services, and Close it on exit.
type App struct {
	Config   *config.ClientConfig
	Logger   *logger.Logger
	Storages *store.ClientStorages
	Tokens   *adapter.StaticTokenProvider
	Services *service.ClientServices
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	tokens := adapter.NewStaticTokenProvider(cfg.Remote.Token)

	cloud, err := adapter.NewHTTPCloudStore(cfg.Remote, tokens, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create cloud store client: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   log,
		Storages: storages,
		Tokens:   tokens,
		Services: service.NewClientServices(cfg, storages, cloud, tokens, log),
	}, nil
}

// Close stops the scheduler and releases the local database.
func (a *App) Close() error {
	a.Services.Scheduler.Close()
	return a.Storages.Close()
}

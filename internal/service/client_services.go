package service

import (
	"github.com/pkruglov/notesync/internal/adapter"
	"github.com/pkruglov/notesync/internal/bus"
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/device"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/store"
)

// ClientServices wires the sync engine together around one local store and
// one cloud store connection. Everything is an explicit instance owned by
// this struct; there are no package-level singletons to reset in tests.
type ClientServices struct {
	Device    *device.Provider
	Versioner *Versioner
	Conflicts *ConflictRegistry
	Sync      SyncService
	Scheduler *Scheduler
	Events    *bus.Bus
}

func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, cloud adapter.CloudStore, tokens adapter.TokenProvider, log *logger.Logger) *ClientServices {
	events := bus.New()
	deviceProvider := device.NewProvider(storages.KV, log)
	versioner := NewVersioner(deviceProvider)
	conflicts := NewConflictRegistry()

	syncService := NewSyncOrchestrator(
		storages.Records,
		storages.Meta,
		cloud,
		tokens,
		deviceProvider,
		versioner,
		conflicts,
		events,
		log,
	)

	return &ClientServices{
		Device:    deviceProvider,
		Versioner: versioner,
		Conflicts: conflicts,
		Sync:      syncService,
		Scheduler: NewScheduler(cfg.Sync, syncService, tokens, events, log),
		Events:    events,
	}
}

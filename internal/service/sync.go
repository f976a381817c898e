package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkruglov/notesync/internal/adapter"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/store"
	"github.com/pkruglov/notesync/models"
)

// syncOrchestrator reconciles the local record store against the shared
// cloud store, one kind at a time. Versions decide winners; timestamps are
// never consulted.
type syncOrchestrator struct {
	records   store.RecordRepository
	meta      store.MetaRepository
	cloud     adapter.CloudStore
	tokens    adapter.TokenProvider
	device    DeviceSource
	versioner RecordVersioner
	conflicts *ConflictRegistry
	announcer Announcer
	logger    *logger.Logger
	now       clock
}

func NewSyncOrchestrator(
	records store.RecordRepository,
	meta store.MetaRepository,
	cloud adapter.CloudStore,
	tokens adapter.TokenProvider,
	device DeviceSource,
	versioner RecordVersioner,
	conflicts *ConflictRegistry,
	announcer Announcer,
	log *logger.Logger,
) SyncService {
	return &syncOrchestrator{
		records:   records,
		meta:      meta,
		cloud:     cloud,
		tokens:    tokens,
		device:    device,
		versioner: versioner,
		conflicts: conflicts,
		announcer: announcer,
		logger:    log.GetChildLogger(),
		now:       time.Now,
	}
}

// PerformIncrementalSync runs one reconciliation pass over every record
// kind. Kinds are independent: a failure in one does not stop the others,
// and the joined error reports everything that went wrong.
func (s *syncOrchestrator) PerformIncrementalSync(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("sync: obtain token: %w", err)
	}
	if token == "" {
		s.logger.Debug().Msg("sync skipped: no authenticated session")
		return nil
	}

	deviceID, err := s.device.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("sync: device identity: %w", err)
	}

	var errs []error
	for _, kind := range models.Kinds() {
		if err := s.syncKind(ctx, kind, deviceID); err != nil {
			s.logger.Error().Err(err).Str("kind", string(kind)).Msg("reconciliation pass failed")
			errs = append(errs, fmt.Errorf("sync %s: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}

// syncKind reconciles a single kind. Sync metadata is persisted only when
// the whole pass ran without a transport failure, so an interrupted pass
// re-examines the same remote window next time (at-least-once).
func (s *syncOrchestrator) syncKind(ctx context.Context, kind models.RecordKind, deviceID string) error {
	since := ""
	meta, err := s.meta.LoadMeta(ctx, kind)
	switch {
	case err == nil:
		since = meta.ChangeToken
	case errors.Is(err, store.ErrMetaNotFound):
		// first pass for this kind, full listing
	default:
		return fmt.Errorf("load sync meta: %w", err)
	}

	listing, err := s.cloud.ListFiles(ctx, kind, since)
	if err != nil {
		return fmt.Errorf("list remote files: %w", err)
	}

	locals, err := s.records.LoadAll(ctx, kind)
	if err != nil {
		return fmt.Errorf("load local records: %w", err)
	}
	localByID := make(map[string]models.Record, len(locals))
	for _, record := range locals {
		localByID[record.ID] = record
	}

	clean := true
	changed := false
	seenRemote := make(map[string]struct{}, len(listing.Files))

	for _, file := range listing.Files {
		remote, err := s.fetchRemote(ctx, file)
		if err != nil {
			if errors.Is(err, errCorruptRemote) {
				s.logger.Warn().Str("file", file.Name).Msg("skipping undecodable remote record")
				continue
			}
			s.logger.Error().Err(err).Str("file", file.Name).Msg("remote read failed")
			clean = false
			continue
		}
		seenRemote[remote.ID] = struct{}{}

		local, exists := localByID[remote.ID]
		if !exists {
			// remote-only: adopt it
			s.versioner.MarkSynced(&remote)
			if err := s.records.SaveOne(ctx, remote); err != nil {
				return fmt.Errorf("save adopted record %s: %w", remote.ID, err)
			}
			changed = true
			continue
		}

		switch {
		case remote.SyncVersion > local.SyncVersion:
			// remote wins, local copy is replaced wholesale
			s.versioner.MarkSynced(&remote)
			if err := s.records.SaveOne(ctx, remote); err != nil {
				return fmt.Errorf("save remote winner %s: %w", remote.ID, err)
			}
			changed = true

		case remote.SyncVersion < local.SyncVersion:
			pushed, err := s.push(ctx, local)
			if err != nil {
				s.logger.Error().Err(err).Str("record", local.ID).Msg("push failed, record stays dirty")
				clean = false
				continue
			}
			if pushed {
				changed = true
			}

		case local.ContentEquals(remote):
			// converged; settle the status if a previous pass was interrupted
			if local.SyncStatus != models.StatusSynced {
				s.versioner.MarkSynced(&local)
				if err := s.records.SaveOne(ctx, local); err != nil {
					return fmt.Errorf("settle converged record %s: %w", local.ID, err)
				}
				changed = true
			}

		default:
			if err := s.enqueueConflict(ctx, kind, local, remote); err != nil {
				return err
			}
			changed = true
		}
	}

	// locals the listing did not mention: push the dirty ones, leave the
	// settled ones alone (an incremental listing omits unchanged objects)
	for _, local := range locals {
		if _, seen := seenRemote[local.ID]; seen {
			continue
		}
		if !local.IsDirty || local.SyncStatus == models.StatusConflict {
			continue
		}
		pushed, err := s.push(ctx, local)
		if err != nil {
			s.logger.Error().Err(err).Str("record", local.ID).Msg("push failed, record stays dirty")
			clean = false
			continue
		}
		if pushed {
			changed = true
		}
	}

	if changed {
		s.announcer.PublishDataChanged(kind)
	}

	if !clean {
		return fmt.Errorf("pass incomplete for %s, sync meta not advanced", kind)
	}

	return s.meta.SaveMeta(ctx, models.SyncMeta{
		Kind:         kind,
		ChangeToken:  listing.ChangeToken,
		LastSyncedAt: s.now(),
		DeviceID:     deviceID,
	})
}

var errCorruptRemote = errors.New("undecodable remote record")

// fetchRemote downloads and decodes one listed object. Decode failures are
// wrapped in errCorruptRemote so the caller can skip the record without
// failing the pass.
func (s *syncOrchestrator) fetchRemote(ctx context.Context, file adapter.FileInfo) (models.Record, error) {
	data, err := s.cloud.ReadFile(ctx, file.ID)
	if err != nil {
		return models.Record{}, err
	}

	var record models.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return models.Record{}, fmt.Errorf("%w: %s", errCorruptRemote, err)
	}
	if record.ID == "" || !record.Kind.Valid() {
		return models.Record{}, fmt.Errorf("%w: missing id or kind", errCorruptRemote)
	}
	return record, nil
}

// push uploads a local record and settles it as synced on success.
func (s *syncOrchestrator) push(ctx context.Context, record models.Record) (bool, error) {
	s.versioner.MarkSynced(&record)

	data, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("encode record %s: %w", record.ID, err)
	}
	if _, err := s.cloud.WriteFile(ctx, remoteName(record), data); err != nil {
		return false, err
	}
	if err := s.records.SaveOne(ctx, record); err != nil {
		return false, fmt.Errorf("settle pushed record %s: %w", record.ID, err)
	}
	return true, nil
}

// enqueueConflict flags the local copy and queues both snapshots for the
// user. Neither copy's payload is touched.
func (s *syncOrchestrator) enqueueConflict(ctx context.Context, kind models.RecordKind, local, remote models.Record) error {
	conflict := models.Conflict{
		ID:        uuid.NewString(),
		Kind:      kind,
		Local:     local,
		Remote:    remote,
		CreatedAt: s.now(),
	}

	s.versioner.MarkConflict(&local, conflict.ID)
	if err := s.records.SaveOne(ctx, local); err != nil {
		return fmt.Errorf("flag conflicted record %s: %w", local.ID, err)
	}

	conflict.Local = local
	s.conflicts.Enqueue(conflict)
	s.logger.Info().Str("record", local.ID).Str("conflict", conflict.ID).Msg("conflict detected at equal versions")
	return nil
}

// ResolveConflict applies the user's decision for one queued conflict.
// Choosing the local copy bumps its version so the next pass pushes it as
// the unambiguous winner; choosing the remote copy overwrites the local one.
func (s *syncOrchestrator) ResolveConflict(ctx context.Context, conflictID string, choice models.ConflictChoice) error {
	if !choice.Valid() {
		return ErrInvalidChoice
	}

	conflict, ok := s.conflicts.Get(conflictID)
	if !ok {
		return ErrConflictNotFound
	}

	var winner models.Record
	switch choice {
	case models.ChoiceLocal:
		winner = conflict.Local
		winner.HasConflict = false
		winner.ConflictCopyID = ""
		s.versioner.BumpOnEdit(&winner, models.RecordUpdate{})
	case models.ChoiceRemote:
		winner = conflict.Remote
		s.versioner.ResolveAsSynced(&winner)
	}

	if err := s.records.SaveOne(ctx, winner); err != nil {
		return fmt.Errorf("resolve conflict %s: %w", conflictID, err)
	}

	s.conflicts.Resolve(conflictID)
	s.announcer.PublishDataChanged(conflict.Kind)
	s.logger.Info().Str("conflict", conflictID).Str("choice", string(choice)).Msg("conflict resolved")
	return nil
}

// remoteName is the object name a record is stored under in the app folder.
func remoteName(record models.Record) string {
	return fmt.Sprintf("%s/%s.json", record.Kind, record.ID)
}

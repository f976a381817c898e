package models

import "time"

// Conflict holds both competing versions of a record that diverged at the
// same sync version. It is created by the orchestrator when version
// comparison cannot pick a winner and destroyed only by explicit resolution
// or by a later reconciliation pass superseding it.
type Conflict struct {
	// ID uniquely identifies the conflict entry in the registry.
	ID string `json:"id"`

	// Kind mirrors the kind of the conflicting record.
	Kind RecordKind `json:"kind"`

	// Local and Remote are full snapshots of both sides at the moment the
	// conflict was detected. Neither stored copy is modified while the
	// conflict is pending.
	Local  Record `json:"local"`
	Remote Record `json:"remote"`

	CreatedAt time.Time `json:"created_at"`
}

// ConflictChoice selects which side of a conflict the user keeps.
type ConflictChoice string

const (
	ChoiceLocal  ConflictChoice = "local"
	ChoiceRemote ConflictChoice = "remote"
)

// Valid reports whether c is a recognised resolution choice.
func (c ConflictChoice) Valid() bool {
	return c == ChoiceLocal || c == ChoiceRemote
}

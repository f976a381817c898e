package service

import "errors"

var (
	ErrInvalidRecordKind = errors.New("unknown record kind")
	ErrConflictNotFound  = errors.New("conflict not found")
	ErrInvalidChoice     = errors.New("invalid conflict resolution choice")
)

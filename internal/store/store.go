package store

import (
	"context"
	"errors"
)

var (
	// ErrNotExist indicates no snapshot has been written yet. A fresh
	// ledger starts empty, so callers treat this as a normal condition.
	ErrNotExist = errors.New("snapshot does not exist")

	// ErrCorruptSnapshot indicates the snapshot resource exists but could
	// not be decoded into valid records. Callers must not trust any part
	// of a corrupt snapshot.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// Store persists the full ledger state as a single document. Every Save
// rewrites the whole snapshot; there is no incremental format.
//
// Quarantine sets the current backing content aside so a later Save cannot
// destroy it. Callers invoke it after Load surfaces corruption, whether the
// document failed to decode or decoded into records no account could have
// produced.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Quarantine(ctx context.Context) error
}

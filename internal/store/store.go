// Package store persists plan records: the loan input, its prepayment plan,
// and the last computed reschedule result. Records are keyed by an owner id
// and carry a monotonically increasing version; saves declare the version they
// expect and conflict on mismatch.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/iwvelando/prepay-planner/internal/engine"
)

var (
	// ErrNotFound reports that no plan record exists for the owner.
	ErrNotFound = errors.New("plan record not found")

	// ErrVersionConflict reports that the record changed since the caller
	// loaded it. The caller reloads and decides; the store never merges.
	ErrVersionConflict = errors.New("plan record version conflict")
)

// PlanRecord is the persisted state for one owner: the request as submitted,
// the last computed result, and when it was calculated.
type PlanRecord struct {
	Owner        string         `json:"owner"`
	Version      int64          `json:"version"`
	Request      engine.Request `json:"request"`
	Result       *engine.Result `json:"result,omitempty"`
	CalculatedAt time.Time      `json:"calculatedAt"`
}

// Repository stores and retrieves plan records.
type Repository interface {
	// Load returns the record for the owner, or ErrNotFound.
	Load(ctx context.Context, owner string) (*PlanRecord, error)

	// Save writes the record if its current version matches expectedVersion
	// (0 for a record that does not exist yet), assigns the next version, and
	// returns the stored record. Returns ErrVersionConflict on mismatch.
	Save(ctx context.Context, record *PlanRecord, expectedVersion int64) (*PlanRecord, error)
}

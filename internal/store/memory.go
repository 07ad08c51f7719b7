package store

import (
	"context"
	"sync"
)

// Memory is an in-memory implementation of Repository.
type Memory struct {
	mu      sync.Mutex
	records map[string]PlanRecord
}

// NewMemory creates a new in-memory plan repository.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]PlanRecord),
	}
}

// Load returns the record for the owner, or ErrNotFound.
func (m *Memory) Load(ctx context.Context, owner string) (*PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[owner]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Save writes the record under its owner key with an optimistic version check.
func (m *Memory) Save(ctx context.Context, record *PlanRecord, expectedVersion int64) (*PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var currentVersion int64
	if current, ok := m.records[record.Owner]; ok {
		currentVersion = current.Version
	}
	if expectedVersion != currentVersion {
		return nil, ErrVersionConflict
	}

	saved := *record
	saved.Version = currentVersion + 1
	m.records[record.Owner] = saved
	return &saved, nil
}

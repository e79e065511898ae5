package memory

import (
	"context"
	"sync"

	"loyalty-pass-service/internal/core/domain"
)

// LoyaltyRepo implements ports.LoyaltyRepository with a process-local map.
// Records are copied in and out so callers never alias stored state.
type LoyaltyRepo struct {
	mu      sync.RWMutex
	records map[string]domain.LoyaltyRecord
}

// NewLoyaltyRepo creates an empty in-memory loyalty store.
func NewLoyaltyRepo() *LoyaltyRepo {
	return &LoyaltyRepo{records: make(map[string]domain.LoyaltyRecord)}
}

// Save replaces the record for userID.
func (r *LoyaltyRepo) Save(_ context.Context, userID string, record domain.LoyaltyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[userID] = record
	return nil
}

// Get returns a copy of the stored record, or nil if the user is unknown.
func (r *LoyaltyRepo) Get(_ context.Context, userID string) (*domain.LoyaltyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Len returns the number of stored users.
func (r *LoyaltyRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

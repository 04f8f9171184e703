package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.ReconciliationLog = (*ReconciliationLog)(nil)

// ReconciliationLog keeps discrepancies in insertion order.
type ReconciliationLog struct {
	mu      sync.Mutex
	entries []domain.Discrepancy
}

// NewReconciliationLog returns an empty log.
func NewReconciliationLog() *ReconciliationLog { return &ReconciliationLog{} }

// Record appends d.
func (l *ReconciliationLog) Record(_ context.Context, d domain.Discrepancy) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, d)
	return nil
}

// List returns a copy of all discrepancies, oldest first.
func (l *ReconciliationLog) List(context.Context) ([]domain.Discrepancy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries), nil
}

// Resolve marks the discrepancy with the given id as settled.
func (l *ReconciliationLog) Resolve(_ context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.entries, func(d domain.Discrepancy) bool { return d.ID == id })
	if i < 0 {
		return domain.DiscrepancyNotFound(id)
	}
	l.entries[i].Resolved = true
	return nil
}

package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/domain/repository"
)

// AuditRepositoryStub stores audit entries in-memory for tests.
type AuditRepositoryStub struct {
	Entries   []model.AuditEntry
	RecordErr error
	ListErr   error
	PruneErr  error
	PingErr   error
	PruneFn   func(context.Context, time.Time) (int64, error)

	mu sync.Mutex
}

var _ repository.AuditRepository = (*AuditRepositoryStub)(nil)

// Record appends entry unless stub has explicit error.
func (s *AuditRepositoryStub) Record(ctx context.Context, entry model.AuditEntry) error {
	if s.RecordErr != nil {
		return s.RecordErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, entry)
	return nil
}

// ListRecent returns newest entries first.
func (s *AuditRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.AuditEntry(nil), s.Entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PruneBefore drops entries older than cutoff.
func (s *AuditRepositoryStub) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.PruneFn != nil {
		return s.PruneFn(ctx, cutoff)
	}
	if s.PruneErr != nil {
		return 0, s.PruneErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.Entries[:0]
	var removed int64
	for _, e := range s.Entries {
		if e.At.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.Entries = kept
	return removed, nil
}

// Ping returns the configured error.
func (s *AuditRepositoryStub) Ping(ctx context.Context) error {
	return s.PingErr
}

// Snapshot returns a copy of the stored entries in insertion order.
func (s *AuditRepositoryStub) Snapshot() []model.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AuditEntry(nil), s.Entries...)
}

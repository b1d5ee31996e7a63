package test

import (
	"context"
	"sync"
	"time"
)

// PrunerFacadeStub counts prune passes issued by the audit pruner.
type PrunerFacadeStub struct {
	Removed int64
	Err     error

	mu        sync.Mutex
	calls     int
	retention time.Duration
}

// PruneAudit records the call and returns the configured result.
func (s *PrunerFacadeStub) PruneAudit(ctx context.Context, retention time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.retention = retention
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Removed, nil
}

// Calls returns how many passes ran.
func (s *PrunerFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastRetention returns the retention of the latest pass.
func (s *PrunerFacadeStub) LastRetention() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.retention
}

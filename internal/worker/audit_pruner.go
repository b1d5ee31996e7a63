package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// AuditFacade exposes the subset of application functionality required by the pruner.
type AuditFacade interface {
	PruneAudit(ctx context.Context, retention time.Duration) (int64, error)
}

// AuditPruner periodically deletes audit entries older than the retention window.
type AuditPruner struct {
	facade    AuditFacade
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewAuditPruner constructs the pruner.
func NewAuditPruner(facade AuditFacade, interval, retention time.Duration, logger *slog.Logger) *AuditPruner {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	return &AuditPruner{
		facade:    facade,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Start launches background pruning. The first pass runs immediately.
func (p *AuditPruner) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.loop(runCtx)
}

// Stop waits for the running pass to finish.
func (p *AuditPruner) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *AuditPruner) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *AuditPruner) prune(ctx context.Context) {
	removed, err := p.facade.PruneAudit(ctx, p.retention)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Error("prune audit entries failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		p.logger.Info("pruned audit entries", slog.Int64("removed", removed), slog.Duration("retention", p.retention))
	}
}

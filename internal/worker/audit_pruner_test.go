package worker

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	testhelpers "github.com/nedcgroup/backoffice/internal/test"
)

func TestNewAuditPrunerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	p := NewAuditPruner(&testhelpers.PrunerFacadeStub{}, 0, 0, logger)
	if p.interval != time.Hour {
		t.Fatalf("expected default interval 1h, got %s", p.interval)
	}
	if p.retention != 720*time.Hour {
		t.Fatalf("expected default retention 720h, got %s", p.retention)
	}
}

func TestAuditPrunerRunsImmediatelyAndPeriodically(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.PrunerFacadeStub{Removed: 2}
	p := NewAuditPruner(facade, 10*time.Millisecond, time.Hour, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Start(ctx)

	deadline := time.After(time.Second)
	for facade.Calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for prune passes, got %d", facade.Calls())
		case <-time.After(5 * time.Millisecond):
		}
	}
	p.Stop()

	if facade.LastRetention() != time.Hour {
		t.Fatalf("expected retention to be passed through, got %s", facade.LastRetention())
	}

	after := facade.Calls()
	time.Sleep(30 * time.Millisecond)
	if facade.Calls() != after {
		t.Fatal("expected no prune passes after stop")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditPrunerLogsFailures(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	facade := &testhelpers.PrunerFacadeStub{Err: errors.New("db down")}
	p := NewAuditPruner(facade, time.Hour, time.Hour, logger)

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.After(time.Second)
	for !strings.Contains(out.String(), "prune audit entries failed") {
		select {
		case <-deadline:
			t.Fatalf("expected failure to be logged, got %q", out.String())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestAuditPrunerStopWithoutStart(t *testing.T) {
	p := NewAuditPruner(&testhelpers.PrunerFacadeStub{}, time.Second, time.Second, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	p.Stop()
}

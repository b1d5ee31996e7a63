package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/config"
	testhelpers "github.com/nedcgroup/backoffice/internal/test"
	"github.com/nedcgroup/backoffice/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestPruner() *worker.AuditPruner {
	return worker.NewAuditPruner(&testhelpers.PrunerFacadeStub{}, time.Hour, time.Hour, discardLogger())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999", RequestTimeout: 3 * time.Second}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
	if server.ReadHeaderTimeout != 3*time.Second {
		t.Fatalf("expected read header timeout from config, got %s", server.ReadHeaderTimeout)
	}
}

func TestNewAuditPrunerUsesConfig(t *testing.T) {
	pruner := newAuditPruner(prunerParams{
		Facade: &BackofficeFacade{},
		Config: &config.Config{AuditPruneInterval: time.Minute, AuditRetention: 24 * time.Hour},
		Logger: discardLogger(),
	})
	if pruner == nil {
		t.Fatal("expected audit pruner instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	facade := &testhelpers.PrunerFacadeStub{}
	pruner := worker.NewAuditPruner(facade, time.Hour, time.Hour, discardLogger())

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Pruner:     pruner,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := recorder.Start(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	// Cancelling the start context must not stop the pruner.
	cancel()

	deadline := time.After(time.Second)
	for facade.Calls() < 1 {
		select {
		case <-deadline:
			t.Fatal("expected pruner to run on start")
		case <-time.After(5 * time.Millisecond):
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.Stop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "bad addr"},
		Pruner:     newTestPruner(),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}
	if shutdowner.Requests() != 1 {
		t.Fatalf("expected exactly one shutdown request, got %d", shutdowner.Requests())
	}

	_ = recorder.Stop(context.Background())
}

func TestLifecycleRecorderOrder(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	var order []string
	for _, name := range []string{"a", "b"} {
		recorder.Append(fx.Hook{
			OnStart: func(context.Context) error { order = append(order, "start "+name); return nil },
			OnStop:  func(context.Context) error { order = append(order, "stop "+name); return nil },
		})
	}
	recorder.Append(fx.Hook{})

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := recorder.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}

	want := []string{"start a", "start b", "stop b", "stop a"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Fatalf("unexpected hook order %v", order)
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}

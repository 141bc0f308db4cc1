package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/plateup/orderflow/internal/config"
	testhelpers "github.com/plateup/orderflow/internal/test"
	"github.com/plateup/orderflow/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	router := gin.New()
	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: ":9999"},
		Router: router,
	})

	if server.Addr != ":9999" {
		t.Fatalf("expected addr :9999, got %q", server.Addr)
	}
	if server.Handler == nil {
		t.Fatal("expected router to be attached as handler")
	}
}

func TestNewDispatcherUsesConfig(t *testing.T) {
	d := newDispatcher(dispatcherParams{
		Publisher: &testhelpers.PublisherStub{},
		Config:    &config.Config{WorkerPoolSize: 2, NotifyBuffer: 4},
		Logger:    discardLogger(),
	})
	if d == nil {
		t.Fatal("expected dispatcher instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	dispatcher := worker.NewNotificationDispatcher(&testhelpers.PublisherStub{}, 1, 1, discardLogger())
	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: "127.0.0.1:0"},
		Router: gin.New(),
	})

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Worker:     dispatcher,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if len(lifecycle.Hooks) != 1 {
		t.Fatalf("expected 1 lifecycle hook, got %d", len(lifecycle.Hooks))
	}
	hook := lifecycle.Hooks[0]

	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("OnStart returned error: %v", err)
	}
	// Let the listener goroutine bind before shutting down.
	time.Sleep(20 * time.Millisecond)

	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("OnStop returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
		t.Fatal("graceful stop must not trigger shutdowner")
	default:
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	dispatcher := worker.NewNotificationDispatcher(&testhelpers.PublisherStub{}, 1, 1, discardLogger())
	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: "bad addr"},
		Router: gin.New(),
	})

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Worker:     dispatcher,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := lifecycle.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("OnStart returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdowner to be called on listen failure")
	}

	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("OnStop returned error: %v", err)
	}
}

func TestLifecycleRecorder(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(fx.Hook{})
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d", len(recorder.Hooks))
	}
}

func TestShutdownerStub(t *testing.T) {
	stub := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := stub.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-stub.Called:
	default:
		t.Fatal("expected shutdown signal")
	}
}

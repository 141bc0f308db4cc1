package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/plateup/orderflow/internal/domain/model"
	testhelpers "github.com/plateup/orderflow/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewNotificationDispatcherDefaults(t *testing.T) {
	d := NewNotificationDispatcher(&testhelpers.PublisherStub{}, 0, 0, discardLogger())
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if cap(d.events) != 64 {
		t.Fatalf("expected buffer default to 64, got %d", cap(d.events))
	}
}

func TestNotificationDispatcherDeliversEvents(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	d := NewNotificationDispatcher(publisher, 2, 8, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Notify(model.OrderEvent{Kind: model.OrderEventPlaced, OrderID: 1})
	d.Notify(model.OrderEvent{Kind: model.OrderEventStatusChanged, OrderID: 1, Status: model.OrderStatusConfirmed})

	deadline := time.After(500 * time.Millisecond)
	for len(publisher.Events()) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for event delivery")
		case <-time.After(10 * time.Millisecond):
		}
	}

	d.Stop()
	if len(publisher.Events()) != 2 {
		t.Fatalf("expected 2 delivered events, got %d", len(publisher.Events()))
	}
}

func TestNotificationDispatcherDropsOnFullBuffer(t *testing.T) {
	// Dispatcher is never started, so the single buffer slot fills up and
	// further events must be dropped without blocking.
	d := NewNotificationDispatcher(&testhelpers.PublisherStub{}, 1, 1, discardLogger())

	done := make(chan struct{})
	go func() {
		d.Notify(model.OrderEvent{OrderID: 1})
		d.Notify(model.OrderEvent{OrderID: 2})
		d.Notify(model.OrderEvent{OrderID: 3})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Notify blocked on a full buffer")
	}
	if len(d.events) != 1 {
		t.Fatalf("expected 1 buffered event, got %d", len(d.events))
	}
}

func TestNotificationDispatcherLogsPublishFailure(t *testing.T) {
	delivered := make(chan struct{}, 1)
	publisher := &testhelpers.PublisherStub{PublishFn: func(context.Context, model.OrderEvent) error {
		select {
		case delivered <- struct{}{}:
		default:
		}
		return errors.New("broker down")
	}}
	d := NewNotificationDispatcher(publisher, 1, 4, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Notify(model.OrderEvent{OrderID: 1})

	select {
	case <-delivered:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for publish attempt")
	}
	d.Stop()
}

func TestNotificationDispatcherStopIsIdempotent(t *testing.T) {
	d := NewNotificationDispatcher(&testhelpers.PublisherStub{}, 1, 1, discardLogger())
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}

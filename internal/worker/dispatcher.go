package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/plateup/orderflow/internal/adapter/notify"
	"github.com/plateup/orderflow/internal/domain/model"
)

// NotificationDispatcher drains order events emitted by the workflow and
// hands them to the publisher on a pool of workers. Dispatch is best-effort:
// a full buffer drops the event with a warning and a failed publish is
// logged, never retried into the workflow path.
type NotificationDispatcher struct {
	publisher notify.Publisher
	workers   int
	logger    *slog.Logger

	events chan model.OrderEvent
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher with a bounded buffer.
func NewNotificationDispatcher(publisher notify.Publisher, workers, buffer int, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 64
	}
	return &NotificationDispatcher{
		publisher: publisher,
		workers:   workers,
		logger:    logger,
		events:    make(chan model.OrderEvent, buffer),
	}
}

// Notify enqueues one event without blocking the caller.
func (d *NotificationDispatcher) Notify(event model.OrderEvent) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("notification buffer full, dropping event",
			slog.Int64("order_id", event.OrderID),
			slog.String("kind", string(event.Kind)),
		)
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.events:
			if !ok {
				return
			}
			if err := d.publisher.Publish(ctx, event); err != nil {
				d.logger.Error("publish order event failed",
					slog.Int64("order_id", event.OrderID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

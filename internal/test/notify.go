package test

import (
	"context"
	"sync"

	"github.com/plateup/orderflow/internal/domain/model"
)

// NotifierStub records events handed to the workflow's notification
// collaborator.
type NotifierStub struct {
	mu     sync.Mutex
	events []model.OrderEvent
}

// Notify records the event.
func (s *NotifierStub) Notify(event model.OrderEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a copy of the recorded events.
func (s *NotifierStub) Events() []model.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderEvent(nil), s.events...)
}

// PublisherStub records published events and can fail on demand.
type PublisherStub struct {
	mu     sync.Mutex
	events []model.OrderEvent

	PublishFn func(ctx context.Context, event model.OrderEvent) error
	Closed    bool
}

// Publish records the event or delegates to PublishFn.
func (s *PublisherStub) Publish(ctx context.Context, event model.OrderEvent) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, event)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Close marks the publisher closed.
func (s *PublisherStub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	return nil
}

// Events returns a copy of the published events.
func (s *PublisherStub) Events() []model.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderEvent(nil), s.events...)
}

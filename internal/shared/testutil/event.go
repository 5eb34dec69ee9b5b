package testutil

import (
	"context"
	"sync"

	"github.com/ecomshop/shop-api/internal/shared/event"
)

// PublishedEvent is an event captured by RecordingPublisher
type PublishedEvent struct {
	Type    string
	Key     string
	Payload any
}

// RecordingPublisher captures published events for assertions
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
	Err    error
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

func (r *RecordingPublisher) Publish(_ context.Context, eventType, key string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.Events = append(r.Events, PublishedEvent{Type: eventType, Key: key, Payload: payload})
	return nil
}

func (r *RecordingPublisher) Close() error { return nil }

// Types returns the published event types in order
func (r *RecordingPublisher) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		types = append(types, e.Type)
	}
	return types
}

var _ event.Publisher = (*RecordingPublisher)(nil)

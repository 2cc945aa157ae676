package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// EventInfo describes a declared event for listings.
type EventInfo struct {
	Name        string
	Description string
}

var (
	catalogueMu sync.RWMutex
	catalogue   = map[string]EventInfo{}
)

// Event[T] binds a topic name to its payload type.
type Event[T any] struct {
	name string
}

// NewEvent declares a typed event. Events are declared at package level, so a
// duplicate name is a programming error and panics.
func NewEvent[T any](name, description string) Event[T] {
	catalogueMu.Lock()
	defer catalogueMu.Unlock()
	if _, exists := catalogue[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q declared twice", name))
	}
	catalogue[name] = EventInfo{Name: name, Description: description}
	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Events lists every declared event sorted by name.
func Events() []EventInfo {
	catalogueMu.RLock()
	defer catalogueMu.RUnlock()
	out := make([]EventInfo, 0, len(catalogue))
	for _, info := range catalogue {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Publish sends a typed event on behalf of userID.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.name, err)
	}
	return p.Publish(ctx, Message{
		Topic:   event.name,
		UserID:  userID,
		Payload: data,
	})
}

// Subscribe decodes each message on the event's topic into T before calling fn.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], fn func(ctx context.Context, userID string, payload T) error) error {
	return s.Subscribe(ctx, event.name, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s: %w", event.name, err)
		}
		return fn(ctx, msg.UserID, payload)
	})
}

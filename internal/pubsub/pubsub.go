package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the event, e.g. "profile.updated".
	Topic string
	// UserID is the identity the event concerns.
	UserID string
	// Payload holds the JSON-encoded event body.
	Payload []byte
	// Metadata carries extra key-value context.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts a background consumer for topic. It returns once the
	// subscription is active; consumption stops when ctx is canceled or the
	// subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Bus is both halves of the event bus.
type Bus interface {
	Publisher
	Subscriber
}

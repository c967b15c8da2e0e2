package session

import "sync"

// Subscriber receives session events. Send must not block.
type Subscriber interface {
	Send(evt Event)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(evt Event)

// Send calls f(evt).
func (f SubscriberFunc) Send(evt Event) {
	f(evt)
}

// ChannelSubscriber is a Subscriber backed by a buffered channel.
// Used by the TUI layer to drain events between frames.
type ChannelSubscriber struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSubscriber creates a channel subscriber.
// bufferSize controls how many events can be buffered before dropping.
func NewChannelSubscriber(bufferSize int) *ChannelSubscriber {
	if bufferSize < 1 {
		bufferSize = 64 // Default buffer size
	}
	return &ChannelSubscriber{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Send queues an event.
// If the buffer is full, the oldest event is dropped to prevent blocking.
func (s *ChannelSubscriber) Send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Drain returns every queued event without blocking.
func (s *ChannelSubscriber) Drain() []Event {
	var out []Event
	for {
		select {
		case evt := <-s.events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

// Close stops delivery. Safe to call more than once.
func (s *ChannelSubscriber) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

package itch

import "sync"

// MessageSink receives decoded messages.
//
// Messages are plain values that share no memory with the input buffer, so
// implementations may keep them after Publish returns.
type MessageSink interface {
	Publish(...Message)
}

// SinkFunc adapts a function to MessageSink.
type SinkFunc func(...Message)

// Publish calls f.
func (f SinkFunc) Publish(msgs ...Message) {
	f(msgs...)
}

// MemorySink stores messages in memory, useful for testing.
type MemorySink struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMemorySink creates a new MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		messages: make([]Message, 0),
	}
}

// Publish appends messages to the in-memory slice.
func (m *MemorySink) Publish(msgs ...Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msgs...)
}

// Count returns the number of messages stored.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}

// Get returns the message at the specified index.
func (m *MemorySink) Get(index int) Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.messages[index]
}

// Messages returns a copy of all messages stored.
func (m *MemorySink) Messages() []Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// DiscardSink discards all messages, useful for benchmarking.
type DiscardSink struct {
}

// NewDiscardSink creates a new DiscardSink.
func NewDiscardSink() *DiscardSink {
	return &DiscardSink{}
}

// Publish does nothing.
func (d *DiscardSink) Publish(msgs ...Message) {

}

// Package audit collects refusal events for operational inspection. The sink
// is injected into the gate service so decision logic stays free of hidden
// global state and is trivially testable with a fake.
package audit

import (
	"sync"

	"github.com/upb/answer-gate/models"
)

// RecordSink receives refusal events emitted by the gate.
type RecordSink interface {
	// Record appends an event. It must be safe for concurrent callers.
	Record(event models.AuditEvent)

	// Events returns all recorded events in insertion order. The returned
	// slice is a defensive copy, not a live view.
	Events() []models.AuditEvent

	// Clear discards all recorded events.
	Clear()
}

// MemorySink is the default RecordSink: an unbounded, mutex-guarded,
// append-only in-process list. Events do not survive a restart.
type MemorySink struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Record appends an event.
func (s *MemorySink) Record(event models.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a copy of all recorded events in insertion order.
func (s *MemorySink) Events() []models.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Clear discards all recorded events.
func (s *MemorySink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// Len returns the number of recorded events.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Package telemetry records the outcome of every law check the
// foundation performs, preserving an auditable trail of which
// structures were admitted and why others were rejected.
package telemetry

import (
	"sync"
	"time"
)

// Outcome describes the result of a single law check.
type Outcome string

const (
	OutcomePass Outcome = "PASS"
	OutcomeFail Outcome = "FAIL"
)

// CheckEvent captures one law-check execution.
type CheckEvent struct {
	Component string  // registry that ran the check, e.g. "presheaf"
	Check     string  // check name, e.g. "functoriality"
	Subject   string  // name of the structure or morphism checked
	Outcome   Outcome // pass or fail
	Code      string  // error code on failure, empty on pass
	Timestamp time.Time
}

// Store persists check events.
type Store interface {
	Append(evt CheckEvent) error
	Events() []CheckEvent
}

// Memory stores check events in memory.
type Memory struct {
	mu     sync.Mutex
	events []CheckEvent
}

// NewMemory creates a new in-memory event store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append records an event.
func (m *Memory) Append(evt CheckEvent) error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evt)
	return nil
}

// Events returns a snapshot of recorded events in append order.
func (m *Memory) Events() []CheckEvent {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CheckEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Emitter records law-check events. The zero value and a nil emitter
// are safe no-ops, so registries can emit unconditionally.
type Emitter struct {
	store Store
	clock func() time.Time
}

// NewEmitter creates a new emitter over the given store.
func NewEmitter(store Store) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a check event. It is a no-op when the store is nil.
func (e *Emitter) Emit(evt CheckEvent) {
	if e == nil || e.store == nil {
		return
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	// Append errors are deliberately dropped: telemetry must never
	// alter the outcome of the check it observes.
	_ = e.store.Append(evt)
}

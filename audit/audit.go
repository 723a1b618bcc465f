// Package audit records typed events for successful vault mutations so a
// host can keep a trail of who changed what, and when in logical time.
package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dgolubev/recordvault/models"
)

// EventType identifies the kind of auditable mutation.
type EventType string

const (
	EventRecordCreate EventType = "record_create"
	EventRecordUpdate EventType = "record_update"
	EventAccessGrant  EventType = "access_grant"
)

// Event is a single audit entry.
type Event struct {
	// ID is a unique event identifier.
	ID string
	// Type is the kind of mutation.
	Type EventType
	// Actor is the principal that performed the mutation.
	Actor models.Principal
	// EntryID is the record the mutation touched.
	EntryID models.RecordID
	// At is the logical timestamp of the mutation.
	At models.LogicalTime
	// Details carries per-type extras (tier, privilege level, grantee).
	Details map[string]string
}

// NewEvent builds an event with a fresh identifier.
func NewEvent(t EventType, actor models.Principal, entryID models.RecordID, at models.LogicalTime, details map[string]string) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    t,
		Actor:   actor,
		EntryID: entryID,
		At:      at,
		Details: details,
	}
}

// Recorder receives audit events. Implementations must not fail the
// mutation that produced the event.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

// NopRecorder discards events.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}

// MemoryRecorder retains events in order of arrival.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryRecorder() *MemoryRecorder { return &MemoryRecorder{} }

func (r *MemoryRecorder) Record(ctx context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a snapshot of everything recorded so far.
func (r *MemoryRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_AssignsUniqueIDs(t *testing.T) {
	a := NewEvent(EventRecordCreate, "alice", 1, 10, nil)
	b := NewEvent(EventRecordCreate, "alice", 1, 10, nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemoryRecorder_KeepsOrder(t *testing.T) {
	rec := NewMemoryRecorder()
	ctx := context.Background()

	rec.Record(ctx, NewEvent(EventRecordCreate, "alice", 1, 10, map[string]string{"tier": "primary"}))
	rec.Record(ctx, NewEvent(EventAccessGrant, "alice", 1, 20, map[string]string{"grantee": "bob"}))
	rec.Record(ctx, NewEvent(EventRecordUpdate, "bob", 1, 30, nil))

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, EventRecordCreate, events[0].Type)
	assert.Equal(t, EventAccessGrant, events[1].Type)
	assert.Equal(t, EventRecordUpdate, events[2].Type)
	assert.Equal(t, "bob", events[1].Details["grantee"])
}

func TestMemoryRecorder_EventsReturnsSnapshot(t *testing.T) {
	rec := NewMemoryRecorder()
	ctx := context.Background()

	rec.Record(ctx, NewEvent(EventRecordCreate, "alice", 1, 10, nil))

	snap := rec.Events()
	rec.Record(ctx, NewEvent(EventRecordUpdate, "alice", 1, 20, nil))

	assert.Len(t, snap, 1)
	assert.Len(t, rec.Events(), 2)
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	r.Record(context.Background(), NewEvent(EventRecordCreate, "alice", 1, 10, nil))
}

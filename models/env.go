// Package models defines the data model of the record vault: records,
// permission grants, and the ambient execution values (caller identity and
// logical time) supplied by the host environment.
package models

// Principal is an opaque caller/account identifier, used both as record
// owner and as grantee reference.
type Principal string

// LogicalTime is a monotonically increasing counter standing in for
// wall-clock time. It is advanced by the host environment, never by the
// vault itself.
type LogicalTime uint64

// Ticks is a span of logical time.
type Ticks uint64

// RecordID is the unique unsigned identifier assigned to each record at
// creation.
type RecordID uint64

// Env carries the implicit inputs the host supplies on every call.
// Modeling them as an explicit value keeps the core testable without a live
// execution environment.
type Env struct {
	// Caller is the authenticated principal invoking the operation.
	Caller Principal
	// Now is the logical timestamp of the current operation.
	Now LogicalTime
}

// StorageTier selects which backing record table an operation targets.
// Tiers share one interface but are fully independent stores; nothing
// synchronizes them.
type StorageTier int

const (
	// TierPrimary is the default record table. Grants always refer to it.
	TierPrimary StorageTier = iota
	// TierEnhanced is the structurally identical secondary table.
	TierEnhanced
)

func (t StorageTier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierEnhanced:
		return "enhanced"
	default:
		return "unknown"
	}
}

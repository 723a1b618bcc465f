package models

// PrivilegeLevel is the access level attached to a grant, independent of the
// boolean modification-rights flag.
type PrivilegeLevel string

const (
	LevelViewer        PrivilegeLevel = "viewer"
	LevelEditor        PrivilegeLevel = "editor"
	LevelAdministrator PrivilegeLevel = "administrator"
)

// Valid reports whether the level is one of the three known values.
func (l PrivilegeLevel) Valid() bool {
	switch l {
	case LevelViewer, LevelEditor, LevelAdministrator:
		return true
	}
	return false
}

// Grant is a time-bounded delegation of rights over one record to one
// principal. At most one grant exists per (EntryID, Grantee) pair; a new
// grant for the same pair replaces the prior one entirely.
type Grant struct {
	EntryID RecordID
	Grantee Principal

	Level              PrivilegeLevel
	ModificationRights bool

	GrantedAt LogicalTime
	ExpiresAt LogicalTime
}

// ActiveAt reports whether the grant is still valid at the given time.
// A grant expires the instant now reaches ExpiresAt.
func (g *Grant) ActiveAt(now LogicalTime) bool {
	return now < g.ExpiresAt
}

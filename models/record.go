package models

// Record is a single vault entry. ID, Owner, and CreatedAt are immutable
// after creation; every other field is replaced wholesale on update.
type Record struct {
	ID    RecordID
	Owner Principal

	Title         string
	IntegrityHash string
	Payload       string
	Category      string
	Tags          []string

	CreatedAt LogicalTime
	UpdatedAt LogicalTime
}

// Clone returns a deep copy so repository callers never alias store-owned
// memory.
func (r *Record) Clone() *Record {
	c := *r
	if r.Tags != nil {
		c.Tags = make([]string, len(r.Tags))
		copy(c.Tags, r.Tags)
	}
	return &c
}

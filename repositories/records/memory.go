package records

import (
	"context"
	"sync"

	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/models"
)

// MemoryRepository implements record storage over a mutex-guarded map.
// It owns the sequence counter for its table: identifiers start at 1,
// increase by one per successful create, and are never reused or reset.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[models.RecordID]*models.Record
	lastID  models.RecordID
}

// NewMemoryRepository constructs an empty store with its counter at zero.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[models.RecordID]*models.Record),
	}
}

// Create assigns the next identifier and inserts the record under one
// critical section, so counter advance and insertion are a single atomic
// unit.
func (r *MemoryRepository) Create(ctx context.Context, record *models.Record) (models.RecordID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.lastID + 1

	stored := record.Clone()
	stored.ID = next

	r.records[next] = stored
	r.lastID = next

	return next, nil
}

// Get returns a copy of the record or common.ErrorNotFound.
func (r *MemoryRepository) Get(ctx context.Context, id models.RecordID) (*models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.Clone(), nil
}

// Save replaces an existing record wholesale.
func (r *MemoryRepository) Save(ctx context.Context, record *models.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return common.ErrorNotFound
	}
	r.records[record.ID] = record.Clone()
	return nil
}

// Count returns the number of stored records.
func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records), nil
}

package grants

import (
	"context"
	"sync"

	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/models"
)

type grantKey struct {
	entryID models.RecordID
	grantee models.Principal
}

// MemoryRepository implements grant storage over a mutex-guarded map.
type MemoryRepository struct {
	mu     sync.Mutex
	grants map[grantKey]*models.Grant
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		grants: make(map[grantKey]*models.Grant),
	}
}

// Put inserts or overwrites the grant for its (entry, grantee) pair.
// A replacement carries no state over from the prior grant.
func (r *MemoryRepository) Put(ctx context.Context, g *models.Grant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *g
	r.grants[grantKey{entryID: g.EntryID, grantee: g.Grantee}] = &stored
	return nil
}

// Get returns a copy of the stored grant or common.ErrorNotFound.
func (r *MemoryRepository) Get(ctx context.Context, entryID models.RecordID, grantee models.Principal) (*models.Grant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.grants[grantKey{entryID: entryID, grantee: grantee}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *g
	return &out, nil
}

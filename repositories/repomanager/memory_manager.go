package repomanager

import (
	"github.com/dgolubev/recordvault/models"
	"github.com/dgolubev/recordvault/repositories/grants"
	"github.com/dgolubev/recordvault/repositories/records"
)

// MemoryRepositoryManager backs every table with in-memory maps. Each record
// tier gets its own store and therefore its own sequence counter.
type MemoryRepositoryManager struct {
	primary  *records.MemoryRepository
	enhanced *records.MemoryRepository
	grants   *grants.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		primary:  records.NewMemoryRepository(),
		enhanced: records.NewMemoryRepository(),
		grants:   grants.NewMemoryRepository(),
	}
}

// Records returns the record table for the tier. Unknown tiers fall back to
// primary.
func (m *MemoryRepositoryManager) Records(tier models.StorageTier) records.Repository {
	if tier == models.TierEnhanced {
		return m.enhanced
	}
	return m.primary
}

func (m *MemoryRepositoryManager) Grants() grants.Repository {
	return m.grants
}

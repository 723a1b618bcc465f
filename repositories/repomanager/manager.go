// Package repomanager aggregates the vault's repositories: one record table
// per storage tier plus the grant table.
package repomanager

import (
	"github.com/dgolubev/recordvault/models"
	"github.com/dgolubev/recordvault/repositories/grants"
	"github.com/dgolubev/recordvault/repositories/records"
)

// RepositoryManager hands out the repositories backing the vault. Record
// tiers are independent tables behind one interface; nothing synchronizes
// them, and grants always refer to the primary tier.
type RepositoryManager interface {
	Records(tier models.StorageTier) records.Repository
	Grants() grants.Repository
}

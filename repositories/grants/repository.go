// Package grants provides storage for permission grants keyed by
// (entry identifier, grantee principal).
package grants

import (
	"context"

	"github.com/dgolubev/recordvault/models"
)

// Repository is the grant table contract. There is no delete: grants only
// lapse by time comparison, and expired rows remain stored.
type Repository interface {
	// Put inserts or fully replaces the grant for (g.EntryID, g.Grantee).
	Put(ctx context.Context, g *models.Grant) error

	// Get returns a copy of the stored grant, expired or not, or
	// common.ErrorNotFound. Expiry is the reader's responsibility.
	Get(ctx context.Context, entryID models.RecordID, grantee models.Principal) (*models.Grant, error)
}

// Package records provides storage for vault records and the identifier
// sequence each store owns.
package records

import (
	"context"

	"github.com/dgolubev/recordvault/models"
)

// Repository is the record table contract. Implementations must make Create
// atomic with respect to identifier assignment: no two creates may observe
// the same next identifier, and no state is visible where the counter has
// advanced without its record.
type Repository interface {
	// Create assigns the next identifier, stores the record under it, and
	// returns it. The caller populates every field except ID.
	Create(ctx context.Context, record *models.Record) (models.RecordID, error)

	// Get returns a copy of the record, or common.ErrorNotFound.
	Get(ctx context.Context, id models.RecordID) (*models.Record, error)

	// Save replaces an existing record wholesale, or returns
	// common.ErrorNotFound if the identifier was never assigned.
	Save(ctx context.Context, record *models.Record) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgolubev/recordvault/models"
)

func TestTiers_AreIndependentStores(t *testing.T) {
	m := NewMemoryRepositoryManager()
	ctx := context.Background()

	primary := m.Records(models.TierPrimary)
	enhanced := m.Records(models.TierEnhanced)

	id, err := primary.Create(ctx, &models.Record{Owner: "a", Title: "p"})
	require.NoError(t, err)
	assert.Equal(t, models.RecordID(1), id)

	// Each tier runs its own sequence counter.
	id, err = enhanced.Create(ctx, &models.Record{Owner: "a", Title: "e"})
	require.NoError(t, err)
	assert.Equal(t, models.RecordID(1), id)

	got, err := primary.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "p", got.Title)

	got, err = enhanced.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "e", got.Title)
}

func TestRecords_UnknownTierFallsBackToPrimary(t *testing.T) {
	m := NewMemoryRepositoryManager()
	assert.Same(t, m.Records(models.TierPrimary), m.Records(models.StorageTier(99)))
}

func TestGrants_SingleTable(t *testing.T) {
	m := NewMemoryRepositoryManager()
	assert.Same(t, m.Grants(), m.Grants())
}

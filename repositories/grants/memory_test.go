package grants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/models"
)

func TestPutGet_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	g := &models.Grant{
		EntryID:            1,
		Grantee:            "bob",
		Level:              models.LevelViewer,
		ModificationRights: false,
		GrantedAt:          10,
		ExpiresAt:          110,
	}
	require.NoError(t, repo.Put(ctx, g))

	got, err := repo.Get(ctx, 1, "bob")
	require.NoError(t, err)
	assert.Equal(t, g, got)
}

func TestGet_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &models.Grant{EntryID: 1, Grantee: "bob"}))

	_, err := repo.Get(ctx, 1, "carol")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Get(ctx, 2, "bob")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPut_OverwritesEntirely(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &models.Grant{
		EntryID: 1, Grantee: "bob",
		Level: models.LevelAdministrator, ModificationRights: true,
		GrantedAt: 10, ExpiresAt: 110,
	}))

	// The replacement is a full overwrite: nothing from the old row survives.
	require.NoError(t, repo.Put(ctx, &models.Grant{
		EntryID: 1, Grantee: "bob",
		Level: models.LevelViewer, ModificationRights: false,
		GrantedAt: 50, ExpiresAt: 60,
	}))

	got, err := repo.Get(ctx, 1, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.LevelViewer, got.Level)
	assert.False(t, got.ModificationRights)
	assert.Equal(t, models.LogicalTime(50), got.GrantedAt)
	assert.Equal(t, models.LogicalTime(60), got.ExpiresAt)
}

func TestGet_ReturnsExpiredRows(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	g := &models.Grant{EntryID: 1, Grantee: "bob", GrantedAt: 10, ExpiresAt: 110}
	require.NoError(t, repo.Put(ctx, g))

	// The store never sweeps by time; rows long past expiry are still there.
	got, err := repo.Get(ctx, 1, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.LogicalTime(110), got.ExpiresAt)
	assert.False(t, got.ActiveAt(200))
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &models.Grant{EntryID: 1, Grantee: "bob", Level: models.LevelViewer}))

	first, err := repo.Get(ctx, 1, "bob")
	require.NoError(t, err)
	first.Level = models.LevelAdministrator

	second, err := repo.Get(ctx, 1, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.LevelViewer, second.Level)
}

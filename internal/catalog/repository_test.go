package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/changhyeonkim/mediatheque-api/internal/catalog"
	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogRepository_ClaimAndRelease(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	repo := catalog.NewCatalogRepository()
	ctx := context.Background()

	cd := testutil.SeedItem(t, db, model.MediaTypeCD, "Kind of Blue", "Miles Davis", true)
	ref := model.RefOf(cd)

	claimed, err := repo.Claim(ctx, db, ref)
	require.NoError(t, err)
	assert.True(t, claimed)

	// second claim finds the item lent
	claimed, err = repo.Claim(ctx, db, ref)
	require.NoError(t, err)
	assert.False(t, claimed)

	_, err = repo.FindAvailableByID(ctx, db, ref)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	released, err := repo.Release(ctx, db, ref)
	require.NoError(t, err)
	assert.True(t, released)

	item, err := repo.FindAvailableByID(ctx, db, ref)
	require.NoError(t, err)
	assert.Equal(t, "Miles Davis", item.Creator())
}

func TestCatalogRepository_BoardGameIsNeverClaimed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	repo := catalog.NewCatalogRepository()
	ctx := context.Background()

	game := testutil.SeedItem(t, db, model.MediaTypeBoardGame, "Catan", "", true)

	claimed, err := repo.Claim(ctx, db, model.RefOf(game))

	require.NoError(t, err)
	assert.False(t, claimed)
	stored, err := repo.FindByID(ctx, db, model.RefOf(game))
	require.NoError(t, err)
	assert.True(t, stored.IsAvailable())
}

func TestCatalogRepository_ReleaseOfDeletedItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	repo := catalog.NewCatalogRepository()
	ctx := context.Background()

	released, err := repo.Release(ctx, db, model.ItemRef{Type: model.MediaTypeBook, ID: 7})

	require.NoError(t, err)
	assert.False(t, released)
}

func TestCatalogRepository_VariantsLiveInSeparateTables(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	repo := catalog.NewCatalogRepository()
	ctx := context.Background()

	testutil.SeedItem(t, db, model.MediaTypeCD, "Kind of Blue", "Miles Davis", true)
	testutil.SeedItem(t, db, model.MediaTypeDVD, "Alien", "Ridley Scott", true)

	// same id, different variants
	cd, err := repo.FindByID(ctx, db, model.ItemRef{Type: model.MediaTypeCD, ID: 1})
	require.NoError(t, err)
	dvd, err := repo.FindByID(ctx, db, model.ItemRef{Type: model.MediaTypeDVD, ID: 1})
	require.NoError(t, err)

	assert.IsType(t, &model.CD{}, cd)
	assert.IsType(t, &model.DVD{}, dvd)
	assert.Equal(t, "Alien", dvd.GetName())

	_, err = repo.FindByID(ctx, db, model.ItemRef{Type: "VINYL", ID: 1})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, gorm.ErrRecordNotFound))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-studio/models"
)

func TestGormSnapshotRepository_ImportAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	menu, err := repo.ImportSnapshot(ctx, sampleSnapshot("bean-there"))
	require.NoError(t, err)
	require.NotZero(t, menu.ID)

	snap, err := repo.FindBySlug(ctx, "bean-there")
	require.NoError(t, err)
	assert.Equal(t, "Bean There", snap.Menu.Name["en"])
	assert.Equal(t, models.RatingSummary{Average: 4.2, Total: 10}, snap.Rating)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, "Flat White", snap.Items[0].Name["en"])
	require.NotNil(t, snap.Items[1].OriginalPrice)
	assert.Equal(t, 3.0, *snap.Items[1].OriginalPrice)
	assert.Len(t, snap.Categories, 2)
	assert.Len(t, snap.Branches, 1)
	assert.Nil(t, snap.Customization)
}

func TestGormSnapshotRepository_ReimportKeepsMenuID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	first, err := repo.ImportSnapshot(ctx, sampleSnapshot("bean-there"))
	require.NoError(t, err)

	next := sampleSnapshot("bean-there")
	next.Items = next.Items[:1]
	next.Menu.Name = models.Localized{"en": "Bean Here"}
	second, err := repo.ImportSnapshot(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	snap, err := repo.FindBySlug(ctx, "bean-there")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "Bean Here", snap.Menu.Name["en"])
}

func TestGormSnapshotRepository_Errors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	_, err := repo.FindBySlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrMenuNotFound)

	_, err = repo.ImportSnapshot(ctx, &models.Snapshot{Menu: &models.Menu{Slug: "  "}})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = repo.ImportSnapshot(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = repo.SetTheme(ctx, "nope", "classic")
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestGormSnapshotRepository_SetTheme(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	_, err := repo.ImportSnapshot(ctx, sampleSnapshot("bean-there"))
	require.NoError(t, err)

	menu, err := repo.SetTheme(ctx, "bean-there", "elegant")
	require.NoError(t, err)
	assert.Equal(t, "elegant", menu.Theme)

	snap, err := repo.FindBySlug(ctx, "bean-there")
	require.NoError(t, err)
	assert.Equal(t, "elegant", snap.Menu.Theme)
}

func TestGormSnapshotRepository_OverlappingIDsAcrossMenus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	_, err := repo.ImportSnapshot(ctx, sampleSnapshot("menu-a"))
	require.NoError(t, err)
	_, err = repo.ImportSnapshot(ctx, sampleSnapshot("menu-b"))
	require.NoError(t, err)

	// re-import of one menu leaves the other untouched
	_, err = repo.ImportSnapshot(ctx, sampleSnapshot("menu-a"))
	require.NoError(t, err)

	for _, slug := range []string{"menu-a", "menu-b"} {
		snap, err := repo.FindBySlug(ctx, slug)
		require.NoError(t, err)
		require.Len(t, snap.Items, 3, slug)
		require.Len(t, snap.Categories, 2, slug)
		assert.Equal(t, uint(100), snap.Items[0].ID)
		assert.Equal(t, snap.Menu.ID, snap.Items[0].MenuID)
		assert.Equal(t, []uint{10, 11}, []uint{snap.Categories[0].ID, snap.Categories[1].ID})
	}
}

func TestGormSnapshotRepository_AssignsMissingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	snap := sampleSnapshot("bean-there")
	snap.Items = append(snap.Items,
		models.Item{Name: models.Localized{"en": "Muffin"}, Price: 2, Available: true},
		models.Item{Name: models.Localized{"en": "Bagel"}, Price: 2, Available: true},
	)
	_, err := repo.ImportSnapshot(ctx, snap)
	require.NoError(t, err)

	got, err := repo.FindBySlug(ctx, "bean-there")
	require.NoError(t, err)
	require.Len(t, got.Items, 5)
	assert.Equal(t, uint(103), got.Items[3].ID)
	assert.Equal(t, uint(104), got.Items[4].ID)

	dup := sampleSnapshot("dup")
	dup.Items[1].ID = dup.Items[0].ID
	_, err = repo.ImportSnapshot(ctx, dup)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestGormSnapshotRepository_Owner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSnapshotRepository(db)
	ctx := context.Background()

	snap := sampleSnapshot("bean-there")
	snap.Menu.OwnerID = 7
	_, err := repo.ImportSnapshot(ctx, snap)
	require.NoError(t, err)

	owner, err := repo.MenuOwner(ctx, "bean-there")
	require.NoError(t, err)
	assert.Equal(t, uint(7), owner)

	_, err = repo.MenuOwner(ctx, "nope")
	assert.ErrorIs(t, err, ErrMenuNotFound)

	other := sampleSnapshot("bean-there")
	other.Menu.OwnerID = 8
	other.Menu.Name = models.Localized{"en": "Taken"}
	_, err = repo.ImportSnapshot(ctx, other)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := repo.FindBySlug(ctx, "bean-there")
	require.NoError(t, err)
	assert.Equal(t, "Bean There", got.Menu.Name["en"])
	assert.Equal(t, uint(7), got.Menu.OwnerID)
}

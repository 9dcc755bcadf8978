package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/renato0307/ombre/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "palettes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_AddAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sunset := domain.Palette{Name: "sunset", From: "#ff5e62", To: "#ff9966"}
	ocean := domain.Palette{Name: "ocean", From: "#2e3192", To: "#1bffff"}
	require.NoError(t, repo.Add(ctx, sunset))
	require.NoError(t, repo.Add(ctx, ocean))

	palettes, err := repo.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.Palette{sunset, ocean}, palettes)
}

func TestSQLiteRepository_ListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	palettes, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, palettes)
}

func TestSQLiteRepository_AddDuplicateName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	p := domain.Palette{Name: "sunset", From: "#ff5e62", To: "#ff9966"}
	require.NoError(t, repo.Add(ctx, p))

	err := repo.Add(ctx, p)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaletteExists)
}

func TestSQLiteRepository_AddFailsWhenPositionReadFails(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.db.Callback().Row().Before("gorm:row").Register("test:fail_row", func(db *gorm.DB) {
		db.AddError(errors.New("position read failed"))
	}))

	err := repo.Add(ctx, domain.Palette{Name: "sunset", From: "#ff5e62", To: "#ff9966"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "position read failed")

	palettes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, palettes)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domain.Palette{Name: "sunset", From: "#ff5e62", To: "#ff9966"}))

	require.NoError(t, repo.Delete(ctx, "sunset"))

	palettes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, palettes)

	err = repo.Delete(ctx, "sunset")
	assert.ErrorIs(t, err, domain.ErrPaletteNotFound)
}

func TestSQLiteRepository_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "palettes.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, domain.Palette{Name: "mint", From: "#00b09b", To: "#96c93d"}))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	palettes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, palettes, 1)
	assert.Equal(t, "mint", palettes[0].Name)
}

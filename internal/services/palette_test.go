package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/ports"
	portsmocks "github.com/renato0307/ombre/internal/ports/mocks"
)

func TestPaletteService_EntriesMergesSourcesInOrder(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	settings := []domain.Palette{{Name: "from-settings", From: "#000000", To: "#ffffff"}}
	stored := []domain.Palette{{Name: "from-db", From: "#111111", To: "#222222"}}
	repo.EXPECT().List(mock.Anything).Return(stored, nil)

	service := NewPaletteService(repo, settings)
	entries, err := service.Entries(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, len(domain.DefaultPalettes)+2)
	assert.Equal(t, PaletteSourceBuiltin, entries[0].Source)
	assert.Equal(t, domain.DefaultPalettes[0], entries[0].Palette)
	assert.Equal(t, PaletteEntry{Palette: settings[0], Source: PaletteSourceSettings}, entries[len(entries)-2])
	assert.Equal(t, PaletteEntry{Palette: stored[0], Source: PaletteSourceStored}, entries[len(entries)-1])
}

func TestPaletteService_EntriesPropagatesRepoError(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("disk on fire"))

	_, err := NewPaletteService(repo, nil).Entries(context.Background())

	assert.EqualError(t, err, "disk on fire")
}

func TestPaletteService_CuratedFallsBackOnRepoError(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	settings := []domain.Palette{{Name: "from-settings", From: "#000000", To: "#ffffff"}}
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("disk on fire"))

	palettes := NewPaletteService(repo, settings).Curated(context.Background())

	require.Len(t, palettes, len(domain.DefaultPalettes)+1)
	assert.Equal(t, settings[0], palettes[len(palettes)-1])
}

func TestPaletteService_LazyStore(t *testing.T) {
	t.Run("open failure is reported as unavailable", func(t *testing.T) {
		calls := 0
		service := NewLazyPaletteService(func() (ports.PaletteRepository, error) {
			calls++
			return nil, errors.New("read-only file system")
		}, nil)

		_, err := service.Entries(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "read-only file system")

		_, err = service.Add(context.Background(), "sunset", "#ff5e62", "#ff9966")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

		err = service.Delete(context.Background(), "sunset")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

		assert.Equal(t, 1, calls)
		assert.NoError(t, service.Close())
	})

	t.Run("opened once and closed", func(t *testing.T) {
		repo := portsmocks.NewMockPaletteRepository(t)
		repo.EXPECT().List(mock.Anything).Return(nil, nil).Times(2)
		repo.EXPECT().Close().Return(nil).Once()
		calls := 0
		service := NewLazyPaletteService(func() (ports.PaletteRepository, error) {
			calls++
			return repo, nil
		}, nil)

		_, err := service.Entries(context.Background())
		require.NoError(t, err)
		_, err = service.Entries(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.NoError(t, service.Close())
	})

	t.Run("close without use does not open", func(t *testing.T) {
		service := NewLazyPaletteService(func() (ports.PaletteRepository, error) {
			t.Fatal("store opened")
			return nil, nil
		}, nil)

		assert.NoError(t, service.Close())
	})
}

func TestPaletteService_Add(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil)
	repo.EXPECT().Add(mock.Anything, domain.Palette{Name: "sunset", From: "#ff5e62", To: "#ff9966"}).Return(nil)

	p, err := NewPaletteService(repo, nil).Add(context.Background(), "sunset", "FF5E62", "#ff9966")

	require.NoError(t, err)
	assert.Equal(t, domain.Color("#ff5e62"), p.From)
}

func TestPaletteService_AddRejectsInvalidColorWithoutTouchingRepo(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)

	_, err := NewPaletteService(repo, nil).Add(context.Background(), "bad", "#12", "#ffffff")

	assert.ErrorIs(t, err, domain.ErrInvalidHex)
}

func TestPaletteService_AddRejectsNameClash(t *testing.T) {
	repo := portsmocks.NewMockPaletteRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil)

	_, err := NewPaletteService(repo, nil).Add(context.Background(), domain.DefaultPalettes[0].Name, "#000000", "#ffffff")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaletteExists)
	assert.Contains(t, err.Error(), PaletteSourceBuiltin)
}

func TestPaletteService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		palette     string
		repoErr     error
		callsRepo   bool
		expectedErr string
	}{
		{"stored palette", "mine", nil, true, ""},
		{"missing palette", "ghost", domain.ErrPaletteNotFound, true, "palette not found"},
		{"builtin palette", domain.DefaultPalettes[1].Name, nil, false, "cannot delete built-in palette"},
		{"settings palette", "configured", nil, false, "defined in settings.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockPaletteRepository(t)
			if tt.callsRepo {
				repo.EXPECT().Delete(mock.Anything, tt.palette).Return(tt.repoErr)
			}
			service := NewPaletteService(repo, []domain.Palette{{Name: "configured", From: "#000000", To: "#ffffff"}})

			err := service.Delete(context.Background(), tt.palette)

			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

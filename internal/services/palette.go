package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/ports"
)

// RepositoryOpener opens the palette store
type RepositoryOpener func() (ports.PaletteRepository, error)

// PaletteService merges the built-in, settings and stored palettes into the
// curated table and manages the stored ones. The store is opened on first use.
type PaletteService struct {
	open     RepositoryOpener
	openErr  error
	openOnce sync.Once
	opened   bool
	repo     ports.PaletteRepository
	settings []domain.Palette
}

// NewPaletteService creates a new PaletteService over an open repository
func NewPaletteService(repo ports.PaletteRepository, settingsPalettes []domain.Palette) *PaletteService {
	return NewLazyPaletteService(func() (ports.PaletteRepository, error) {
		return repo, nil
	}, settingsPalettes)
}

// NewLazyPaletteService creates a PaletteService that calls open the first
// time stored palettes are needed
func NewLazyPaletteService(open RepositoryOpener, settingsPalettes []domain.Palette) *PaletteService {
	return &PaletteService{
		open:     open,
		settings: settingsPalettes,
	}
}

// repository opens the store once and returns it
func (s *PaletteService) repository() (ports.PaletteRepository, error) {
	s.openOnce.Do(func() {
		s.opened = true
		repo, err := s.open()
		if err != nil {
			s.openErr = fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
			return
		}
		s.repo = repo
	})
	return s.repo, s.openErr
}

// configuredEntries returns the built-in and settings palettes
func (s *PaletteService) configuredEntries() []PaletteEntry {
	entries := make([]PaletteEntry, 0, len(domain.DefaultPalettes)+len(s.settings))
	for _, p := range domain.DefaultPalettes {
		entries = append(entries, PaletteEntry{Palette: p, Source: PaletteSourceBuiltin})
	}
	for _, p := range s.settings {
		entries = append(entries, PaletteEntry{Palette: p, Source: PaletteSourceSettings})
	}
	return entries
}

// Entries returns every palette with its source. Fails when the store
// cannot be opened or read.
func (s *PaletteService) Entries(ctx context.Context) ([]PaletteEntry, error) {
	repo, err := s.repository()
	if err != nil {
		return nil, err
	}
	stored, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := s.configuredEntries()
	for _, p := range stored {
		entries = append(entries, PaletteEntry{Palette: p, Source: PaletteSourceStored})
	}
	return entries, nil
}

// Curated returns the curated table used by Randomize. Stored palettes are
// skipped with a warning when the store is unavailable.
func (s *PaletteService) Curated(ctx context.Context) []domain.Palette {
	entries, err := s.Entries(ctx)
	if err != nil {
		logging.Logger.Warn("Stored palettes unavailable, using built-in and settings palettes", "error", err)
		entries = s.configuredEntries()
	}
	palettes := make([]domain.Palette, len(entries))
	for i, e := range entries {
		palettes[i] = e.Palette
	}
	return palettes
}

// Add validates and stores a new palette. Names are unique across all sources.
func (s *PaletteService) Add(ctx context.Context, name, from, to string) (domain.Palette, error) {
	palette, err := domain.NewPalette(name, from, to)
	if err != nil {
		return domain.Palette{}, err
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return domain.Palette{}, err
	}
	for _, e := range entries {
		if e.Palette.Name == palette.Name {
			return domain.Palette{}, fmt.Errorf("%w: %s (%s)", domain.ErrPaletteExists, palette.Name, e.Source)
		}
	}

	repo, err := s.repository()
	if err != nil {
		return domain.Palette{}, err
	}
	logging.Logger.Info("Adding palette", "name", palette.Name, "from", palette.From, "to", palette.To)
	if err := repo.Add(ctx, palette); err != nil {
		logging.Logger.Error("Failed to add palette", "name", palette.Name, "error", err)
		return domain.Palette{}, err
	}
	return palette, nil
}

// Delete removes a stored palette. Built-in and settings palettes are read-only.
func (s *PaletteService) Delete(ctx context.Context, name string) error {
	for _, p := range domain.DefaultPalettes {
		if p.Name == name {
			return fmt.Errorf("cannot delete built-in palette %s", name)
		}
	}
	for _, p := range s.settings {
		if p.Name == name {
			return fmt.Errorf("palette %s is defined in settings.json; edit the file to remove it", name)
		}
	}

	repo, err := s.repository()
	if err != nil {
		return err
	}
	logging.Logger.Info("Deleting palette", "name", name)
	return repo.Delete(ctx, name)
}

// Close closes the store if it was opened
func (s *PaletteService) Close() error {
	if !s.opened || s.repo == nil {
		return nil
	}
	return s.repo.Close()
}

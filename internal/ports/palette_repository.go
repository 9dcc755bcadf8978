package ports

import (
	"context"

	"github.com/renato0307/ombre/internal/domain"
)

// PaletteReader reads user-curated palettes
type PaletteReader interface {
	List(ctx context.Context) ([]domain.Palette, error)
}

// PaletteWriter adds and removes user-curated palettes
type PaletteWriter interface {
	Add(ctx context.Context, palette domain.Palette) error
	Delete(ctx context.Context, name string) error
}

// PaletteRepository combines all palette storage operations
type PaletteRepository interface {
	PaletteReader
	PaletteWriter
	Close() error
}

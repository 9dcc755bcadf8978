package services

import "github.com/renato0307/ombre/internal/domain"

// Palette sources, in the order they are merged into the curated table
const (
	PaletteSourceBuiltin  = "builtin"
	PaletteSourceSettings = "settings"
	PaletteSourceStored   = "stored"
)

// PaletteEntry is a curated palette tagged with where it came from
type PaletteEntry struct {
	Palette domain.Palette
	Source  string
}

// RenderParams contains the raw inputs for a one-shot render
type RenderParams struct {
	Direction string
	From      string
	To        string
}

package domain

import (
	"fmt"
	"strings"
)

// PaletteMode selects how Randomize picks its colors
type PaletteMode int

const (
	PaletteRandom PaletteMode = iota
	PaletteCurated
)

// String returns the mode name used in logs and CLI output
func (m PaletteMode) String() string {
	if m == PaletteCurated {
		return "curated"
	}
	return "random"
}

// Palette is a hand-picked pair of colors
type Palette struct {
	From Color
	Name string
	To   Color
}

// DefaultPalettes is the built-in curated table
var DefaultPalettes = []Palette{
	{Name: "slate", From: "#0f172a", To: "#1e293b"},
	{Name: "midnight", From: "#020617", To: "#312e81"},
	{Name: "deep-teal", From: "#0f766e", To: "#022c22"},
	{Name: "graphite", From: "#111827", To: "#4b5563"},
	{Name: "harbor", From: "#1d3557", To: "#457b9d"},
}

// NewPalette validates both colors and the name
func NewPalette(name, from, to string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Palette{}, fmt.Errorf("%w: name required", ErrInvalidPalette)
	}
	c1, err := ParseColor(from)
	if err != nil {
		return Palette{}, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}
	c2, err := ParseColor(to)
	if err != nil {
		return Palette{}, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}
	return Palette{Name: name, From: c1, To: c2}, nil
}

// ContainsPair reports whether any palette holds exactly (from, to)
func ContainsPair(palettes []Palette, from, to Color) bool {
	for _, p := range palettes {
		if p.From == from && p.To == to {
			return true
		}
	}
	return false
}

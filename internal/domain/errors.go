package domain

import "errors"

var (
	ErrInvalidHex       = errors.New("invalid hex color")
	ErrInvalidPalette   = errors.New("invalid palette")
	ErrPaletteExists    = errors.New("palette already exists")
	ErrPaletteNotFound  = errors.New("palette not found")
	ErrStoreUnavailable = errors.New("palette store unavailable")
	ErrUnknownDirection = errors.New("unknown gradient direction")
)

package cmd

// PalettesCmd manages the curated palette table
type PalettesCmd struct {
	Add  PalettesAddCmd  `cmd:"add" help:"Store a new curated palette"`
	Del  PalettesDelCmd  `cmd:"del" aliases:"rm" help:"Delete a stored palette"`
	List PalettesListCmd `cmd:"list" aliases:"ls" help:"List built-in, settings and stored palettes" default:"1"`
}

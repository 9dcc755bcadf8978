package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/ombre/internal/logging"
)

// PalettesAddCmd stores a new palette
type PalettesAddCmd struct {
	Name string `arg:"" help:"Unique palette name"`
	From string `arg:"" help:"Start color (#rrggbb)"`
	To   string `arg:"" help:"End color (#rrggbb)"`
}

// Run executes the add command
func (p *PalettesAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing palettes add command", "name", p.Name)

	palette, err := cli.Container.PaletteService.Add(context.Background(), p.Name, p.From, p.To)
	if err != nil {
		return fmt.Errorf("failed to add palette: %w", err)
	}

	fmt.Fprintf(cli.out(), "Palette '%s' added (%s → %s)\n", palette.Name, palette.From, palette.To)
	return nil
}

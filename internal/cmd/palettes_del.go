package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/ombre/internal/logging"
)

// PalettesDelCmd deletes a stored palette
type PalettesDelCmd struct {
	Force bool   `help:"Delete without confirmation" short:"f"`
	Name  string `arg:"" help:"Name of the palette to delete"`
}

// Run executes the del command
func (p *PalettesDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing palettes del command", "name", p.Name, "force", p.Force)

	if !p.Force {
		confirmed, err := p.confirmDeletion()
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled palette deletion", "name", p.Name)
			fmt.Fprintln(cli.out(), "Cancelled")
			return nil
		}
	}

	if err := cli.Container.PaletteService.Delete(context.Background(), p.Name); err != nil {
		logging.Logger.Error("Failed to delete palette", "name", p.Name, "error", err)
		return fmt.Errorf("failed to delete palette: %w", err)
	}

	fmt.Fprintf(cli.out(), "Palette '%s' deleted\n", p.Name)
	return nil
}

func (p *PalettesDelCmd) confirmDeletion() (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete palette '%s'?", p.Name)).
		Affirmative("Delete").
		Negative("Keep").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}

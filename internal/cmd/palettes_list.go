package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/services"
)

// PalettesListCmd lists every curated palette
type PalettesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type paletteOutput struct {
	From   string `json:"from"`
	Name   string `json:"name"`
	Source string `json:"source"`
	To     string `json:"to"`
}

// Run executes the list command
func (p *PalettesListCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Listing palettes")

	entries, err := cli.Container.PaletteService.Entries(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list palettes: %w", err)
	}

	if p.Format == formatTable {
		fmt.Fprint(cli.out(), renderTable([]string{"Name", "From", "To", "Source"}, paletteRows(entries)))
		return nil
	}

	output := make([]paletteOutput, 0, len(entries))
	for _, e := range entries {
		output = append(output, paletteOutput{
			From:   e.Palette.From.String(),
			Name:   e.Palette.Name,
			Source: e.Source,
			To:     e.Palette.To.String(),
		})
	}
	return writeJSON(cli.out(), output)
}

// paletteRows formats palette entries as table rows
func paletteRows(entries []services.PaletteEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Palette.Name, e.Palette.From.String(), e.Palette.To.String(), e.Source})
	}
	return rows
}

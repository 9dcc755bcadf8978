package cmd

import (
	"context"

	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/logging"
)

// RandomCmd prints a random gradient
type RandomCmd struct {
	Curated bool   `help:"Pick a curated palette instead of two random colors" short:"c"`
	Format  string `help:"Output format: css or json" enum:"css,json" default:"css"`
}

// Run executes the random command
func (r *RandomCmd) Run(cli *CLI) error {
	mode := domain.PaletteRandom
	if r.Curated {
		mode = domain.PaletteCurated
	}
	logging.Logger.Info("Executing random command", "mode", mode.String())

	rendered := cli.Container.GradientService.Random(context.Background(), mode)
	return writeRendered(cli.out(), rendered, r.Format)
}

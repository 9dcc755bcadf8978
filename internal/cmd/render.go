package cmd

import (
	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/services"
)

// GradientFlags are the inputs shared by render and copy
type GradientFlags struct {
	Direction string `help:"Gradient direction (defaults to the first configured direction)" short:"D"`
	From      string `help:"Start color (#rrggbb, the # is optional)" required:""`
	To        string `help:"End color (#rrggbb, the # is optional)" required:""`
}

// params converts the flags to service parameters
func (g GradientFlags) params(container *Container) services.RenderParams {
	direction := g.Direction
	if direction == "" {
		direction = container.GradientService.Directions()[0].String()
	}
	return services.RenderParams{
		Direction: direction,
		From:      g.From,
		To:        g.To,
	}
}

// RenderCmd prints the CSS for explicit colors
type RenderCmd struct {
	GradientFlags `embed:""`

	Format string `help:"Output format: css or json" enum:"css,json" default:"css"`
}

// Run executes the render command
func (r *RenderCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing render command", "from", r.From, "to", r.To, "direction", r.Direction)

	rendered, err := cli.Container.GradientService.Render(r.params(cli.Container))
	if err != nil {
		return err
	}
	return writeRendered(cli.out(), rendered, r.Format)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/ombre/internal/logging"
)

// CopyCmd renders a gradient and writes its CSS to the clipboard
type CopyCmd struct {
	GradientFlags `embed:""`

	Clipboard string `help:"Clipboard backend" default:"auto" enum:"auto,system,osc52" env:"OMBRE_CLIPBOARD"`
}

// Run executes the copy command
func (c *CopyCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing copy command", "from", c.From, "to", c.To, "direction", c.Direction)

	ctx := context.Background()
	rendered, err := cli.Container.GradientService.Render(c.params(cli.Container))
	if err != nil {
		return err
	}

	clipboardService, err := cli.Container.NewClipboardService(cli.clipboardMode(c.Clipboard), cli.errOut())
	if err != nil {
		return err
	}
	if err := clipboardService.Copy(ctx, rendered.CSS); err != nil {
		return err
	}

	fmt.Fprintln(cli.out(), "Copied CSS to clipboard.")
	return nil
}

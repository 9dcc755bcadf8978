package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/renato0307/ombre/internal/domain"
)

// newDirectionDialog creates a select dialog over the configured directions.
// The choice is written to value when the form completes.
func newDirectionDialog(directions []domain.Direction, value *domain.Direction, devMode bool) *Dialog {
	options := make([]huh.Option[domain.Direction], 0, len(directions))
	for _, d := range directions {
		options = append(options, huh.NewOption(d.String(), d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Direction]().
				Title("Gradient direction").
				Description("CSS linear-gradient direction keyword or angle").
				Options(options...).
				Value(value),
		),
	)

	return NewDialog("Direction", form, devMode)
}

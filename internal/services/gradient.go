package services

import (
	"context"
	"fmt"

	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/logging"
)

// GradientService builds GradientState instances from configuration
type GradientService struct {
	directions []domain.Direction
	palettes   *PaletteService
	rand       domain.Rand
}

// NewGradientService creates a new GradientService. A nil rand uses the
// global math/rand/v2 source.
func NewGradientService(palettes *PaletteService, directions []domain.Direction, rand domain.Rand) *GradientService {
	return &GradientService{
		directions: directions,
		palettes:   palettes,
		rand:       rand,
	}
}

// Directions returns the configured direction set
func (s *GradientService) Directions() []domain.Direction {
	if len(s.directions) == 0 {
		return domain.DefaultDirections
	}
	return s.directions
}

// NewState creates a state wired to the configured directions and the full
// curated table
func (s *GradientService) NewState(ctx context.Context) *domain.GradientState {
	return s.newState(s.palettes.Curated(ctx))
}

func (s *GradientService) newState(palettes []domain.Palette) *domain.GradientState {
	logging.Logger.Debug("Creating gradient state", "palettes", len(palettes), "directions", len(s.Directions()))

	return domain.NewGradientState(domain.GradientConfig{
		Directions: s.Directions(),
		Palettes:   palettes,
		Rand:       s.rand,
	})
}

// Render validates raw inputs and renders them. Unlike the interactive text
// fields, a malformed color here is a hard error.
func (s *GradientService) Render(params RenderParams) (domain.Rendered, error) {
	from, err := domain.ParseColor(params.From)
	if err != nil {
		return domain.Rendered{}, fmt.Errorf("from: %w", err)
	}
	to, err := domain.ParseColor(params.To)
	if err != nil {
		return domain.Rendered{}, fmt.Errorf("to: %w", err)
	}
	direction, err := domain.ParseDirection(params.Direction, s.Directions())
	if err != nil {
		return domain.Rendered{}, err
	}

	return domain.GradientSpec{
		Direction: direction,
		From:      from,
		To:        to,
	}.Render(), nil
}

// Random renders a freshly randomized gradient. Only curated mode reads the
// palette table.
func (s *GradientService) Random(ctx context.Context, mode domain.PaletteMode) domain.Rendered {
	var state *domain.GradientState
	if mode == domain.PaletteCurated {
		state = s.NewState(ctx)
	} else {
		state = s.newState(nil)
	}
	state.Randomize(mode)

	rendered := state.Render()
	logging.Logger.Debug("Randomized gradient", "mode", mode.String(), "gradient", rendered.Gradient)
	return rendered
}

package ui

import "github.com/charmbracelet/bubbles/key"

// GradientKeys defines key bindings that change or export the gradient
type GradientKeys struct {
	Copy          key.Binding
	Curated       key.Binding
	DirectionNext key.Binding
	DirectionPick key.Binding
	DirectionPrev key.Binding
	Random        key.Binding
	Swap          key.Binding
}

func newGradientKeys(b map[string]key.Binding) GradientKeys {
	return GradientKeys{
		Copy:          b["copy"],
		Curated:       b["curated"],
		DirectionNext: b["direction_next"],
		DirectionPick: b["direction_pick"],
		DirectionPrev: b["direction_prev"],
		Random:        b["random"],
		Swap:          b["swap"],
	}
}

func (k GradientKeys) all() []key.Binding {
	return []key.Binding{k.Random, k.Curated, k.Swap, k.DirectionNext, k.DirectionPrev, k.DirectionPick, k.Copy}
}

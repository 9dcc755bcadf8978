package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Slot identifies one of the two gradient endpoints
type Slot int

const (
	Slot1 Slot = iota + 1
	Slot2
)

// Slots lists both endpoints in order
var Slots = []Slot{Slot1, Slot2}

func (s Slot) index() int {
	switch s {
	case Slot1:
		return 0
	case Slot2:
		return 1
	}
	panic(fmt.Sprintf("invalid slot %d", int(s)))
}

// String returns "1" or "2"
func (s Slot) String() string {
	return fmt.Sprintf("%d", int(s))
}

// Rand is the random source used by Randomize.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level source
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// GradientConfig is the static configuration consumed by GradientState
type GradientConfig struct {
	Directions []Direction // Defaults to DefaultDirections when empty
	Palettes   []Palette   // Defaults to DefaultPalettes when empty
	Rand       Rand        // Defaults to the math/rand/v2 global source
}

// colorSlot keeps the picker value (the committed color) and the text field
// contents for one endpoint
type colorSlot struct {
	color   Color
	invalid bool
	text    string
}

// GradientState owns the two committed colors and the direction.
// It is not safe for concurrent use; callers serialize access.
type GradientState struct {
	direction  Direction
	directions []Direction
	palettes   []Palette
	rand       Rand
	slots      [2]colorSlot
}

// NewGradientState creates a state seeded from the first curated palette and
// the first direction. Callers usually Randomize right after.
func NewGradientState(cfg GradientConfig) *GradientState {
	directions := cfg.Directions
	if len(directions) == 0 {
		directions = DefaultDirections
	}
	palettes := cfg.Palettes
	if len(palettes) == 0 {
		palettes = DefaultPalettes
	}
	r := cfg.Rand
	if r == nil {
		r = globalRand{}
	}

	s := &GradientState{
		directions: directions,
		palettes:   palettes,
		rand:       r,
	}
	s.SetFromPicker(Slot1, palettes[0].From)
	s.SetFromPicker(Slot2, palettes[0].To)
	s.SetDirection(directions[0])
	return s
}

// SetFromPicker commits a well-formed color coming from the picker, mirrors it
// into the text field and clears the invalid flag
func (s *GradientState) SetFromPicker(slot Slot, c Color) {
	c = Color(strings.ToLower(string(c)))
	s.slots[slot.index()] = colorSlot{
		color: c,
		text:  string(c),
	}
}

// SetFromText validates free-form text for a slot. A valid value is committed
// lowercase and mirrored into the picker. An invalid value only raises the
// invalid flag: the committed color and the picker stay as they were, and the
// raw text is kept so the user can fix it. Returns the resulting validity.
func (s *GradientState) SetFromText(slot Slot, raw string) bool {
	cs := &s.slots[slot.index()]
	c, err := ParseColor(raw)
	if err != nil {
		cs.invalid = true
		cs.text = raw
		return false
	}
	cs.color = c
	cs.text = string(c)
	cs.invalid = false
	return true
}

// SetDirection replaces the direction. The value is expected to come from
// the configured set.
func (s *GradientState) SetDirection(d Direction) {
	s.direction = d
}

// Swap exchanges the two committed colors. Text fields follow the colors and
// both invalid flags clear, since the values now originate from the pickers.
func (s *GradientState) Swap() {
	c1, c2 := s.slots[0].color, s.slots[1].color
	s.SetFromPicker(Slot1, c2)
	s.SetFromPicker(Slot2, c1)
}

// Randomize replaces both colors and the direction.
// PaletteRandom draws each color uniformly from the 24-bit space;
// PaletteCurated draws one pair from the palette table. The direction is drawn
// independently in both modes.
func (s *GradientState) Randomize(mode PaletteMode) {
	var from, to Color
	switch mode {
	case PaletteCurated:
		p := s.palettes[s.rand.IntN(len(s.palettes))]
		from, to = p.From, p.To
	default:
		from = RandomColor(s.rand)
		to = RandomColor(s.rand)
	}
	direction := s.directions[s.rand.IntN(len(s.directions))]

	s.SetFromPicker(Slot1, from)
	s.SetFromPicker(Slot2, to)
	s.SetDirection(direction)
}

// Spec returns the committed triple
func (s *GradientState) Spec() GradientSpec {
	return GradientSpec{
		Direction: s.direction,
		From:      s.slots[0].color,
		To:        s.slots[1].color,
	}
}

// Render derives the gradient descriptor and the CSS text. It never mutates.
func (s *GradientState) Render() Rendered {
	return s.Spec().Render()
}

// Color returns the committed color (the picker value) for a slot
func (s *GradientState) Color(slot Slot) Color {
	return s.slots[slot.index()].color
}

// Text returns the text field contents for a slot
func (s *GradientState) Text(slot Slot) string {
	return s.slots[slot.index()].text
}

// Valid reports whether the slot's text field currently holds a valid color
func (s *GradientState) Valid(slot Slot) bool {
	return !s.slots[slot.index()].invalid
}

// Direction returns the current direction
func (s *GradientState) Direction() Direction {
	return s.direction
}

// Directions returns the configured direction set
func (s *GradientState) Directions() []Direction {
	return s.directions
}

// Palettes returns the configured curated table
func (s *GradientState) Palettes() []Palette {
	return s.palettes
}

// RandomColor draws a uniform integer in [0, 16^6) and renders it as a color
func RandomColor(r Rand) Color {
	v := r.IntN(1 << 24)
	return Color(fmt.Sprintf("#%06x", v))
}

package domain

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand returns queued values, reduced modulo n
type seqRand struct {
	values []int
}

func (r *seqRand) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func newTestState(values ...int) *GradientState {
	return NewGradientState(GradientConfig{Rand: &seqRand{values: values}})
}

func TestNewGradientState_Defaults(t *testing.T) {
	s := NewGradientState(GradientConfig{})

	assert.Equal(t, DefaultPalettes[0].From, s.Color(Slot1))
	assert.Equal(t, DefaultPalettes[0].To, s.Color(Slot2))
	assert.Equal(t, DefaultDirections[0], s.Direction())
	assert.True(t, s.Valid(Slot1))
	assert.True(t, s.Valid(Slot2))
	assert.Equal(t, DefaultDirections, s.Directions())
	assert.Equal(t, DefaultPalettes, s.Palettes())
}

func TestSetFromPicker(t *testing.T) {
	s := newTestState()
	s.SetFromText(Slot1, "bad")
	require.False(t, s.Valid(Slot1))

	s.SetFromPicker(Slot1, "#AABBCC")

	assert.Equal(t, Color("#aabbcc"), s.Color(Slot1))
	assert.Equal(t, "#aabbcc", s.Text(Slot1))
	assert.True(t, s.Valid(Slot1))
}

func TestSetFromText_ValidInputs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
	}{
		{"uppercase no hash", "ABCDEF", "#abcdef"},
		{"hash lowercase", "#123abc", "#123abc"},
		{"whitespace", "  #FfEeDd  ", "#ffeedd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.SetFromText(Slot2, "nope")

			valid := s.SetFromText(Slot2, tt.input)

			assert.True(t, valid)
			assert.True(t, s.Valid(Slot2))
			assert.Equal(t, tt.expected, s.Color(Slot2))
			assert.Equal(t, string(tt.expected), s.Text(Slot2))
		})
	}
}

func TestSetFromText_InvalidKeepsCommittedColor(t *testing.T) {
	tests := []string{"xyz123", "", "#12345", "1234567", "#ggg000", "# 123456"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			s := newTestState()
			s.SetFromPicker(Slot1, "#112233")
			before := s.Render()

			valid := s.SetFromText(Slot1, input)

			assert.False(t, valid)
			assert.False(t, s.Valid(Slot1))
			assert.Equal(t, Color("#112233"), s.Color(Slot1))
			assert.Equal(t, input, s.Text(Slot1))
			assert.Equal(t, before, s.Render())

			// Retrying the same bad input changes nothing
			assert.False(t, s.SetFromText(Slot1, input))
			assert.Equal(t, Color("#112233"), s.Color(Slot1))
		})
	}
}

func TestSetFromText_InvalidDoesNotTouchOtherSlot(t *testing.T) {
	s := newTestState()
	s.SetFromPicker(Slot2, "#445566")

	s.SetFromText(Slot1, "xyz123")

	assert.True(t, s.Valid(Slot2))
	assert.Equal(t, Color("#445566"), s.Color(Slot2))
}

func TestValidityStateMachine(t *testing.T) {
	s := newTestState()
	require.True(t, s.Valid(Slot1))

	s.SetFromText(Slot1, "12")
	assert.False(t, s.Valid(Slot1))

	s.SetFromText(Slot1, "123")
	assert.False(t, s.Valid(Slot1))

	s.SetFromText(Slot1, "123456")
	assert.True(t, s.Valid(Slot1))

	s.SetFromText(Slot1, "1234567")
	assert.False(t, s.Valid(Slot1))

	s.SetFromPicker(Slot1, "#000000")
	assert.True(t, s.Valid(Slot1))
}

func TestSwap(t *testing.T) {
	s := newTestState()
	s.SetFromPicker(Slot1, "#112233")
	s.SetFromPicker(Slot2, "#445566")
	s.SetDirection(DirectionToBottom)

	s.Swap()
	assert.Equal(t, Color("#445566"), s.Color(Slot1))
	assert.Equal(t, Color("#112233"), s.Color(Slot2))
	assert.Equal(t, "#445566", s.Text(Slot1))
	assert.Equal(t, DirectionToBottom, s.Direction())

	s.Swap()
	assert.Equal(t, Color("#112233"), s.Color(Slot1))
	assert.Equal(t, Color("#445566"), s.Color(Slot2))
	assert.Equal(t, DirectionToBottom, s.Direction())
}

func TestSwap_ClearsInvalidFlags(t *testing.T) {
	s := newTestState()
	s.SetFromPicker(Slot1, "#112233")
	s.SetFromText(Slot1, "oops")

	s.Swap()

	assert.True(t, s.Valid(Slot1))
	assert.True(t, s.Valid(Slot2))
	assert.Equal(t, Color("#112233"), s.Color(Slot2))
}

func TestRender_Example(t *testing.T) {
	s := newTestState()
	s.SetFromPicker(Slot1, "#112233")
	s.SetFromPicker(Slot2, "#445566")
	s.SetDirection("to right")

	expected := "background: #112233;\n" +
		"background: -webkit-linear-gradient(to right, #112233, #445566);\n" +
		"background: linear-gradient(to right, #112233, #445566);"

	assert.Equal(t, expected, s.Render().CSS)
	assert.Equal(t, s.Render(), s.Render())
}

func TestRandomize_Random(t *testing.T) {
	s := newTestState(0xabcdef, 0x00000f, 3)
	s.SetFromText(Slot1, "bad")
	s.SetFromText(Slot2, "bad")

	s.Randomize(PaletteRandom)

	assert.Equal(t, Color("#abcdef"), s.Color(Slot1))
	assert.Equal(t, Color("#00000f"), s.Color(Slot2))
	assert.Equal(t, DefaultDirections[3], s.Direction())
	assert.True(t, s.Valid(Slot1))
	assert.True(t, s.Valid(Slot2))
}

func TestRandomize_RandomAlwaysWellFormed(t *testing.T) {
	s := NewGradientState(GradientConfig{Rand: rand.New(rand.NewPCG(1, 2))})

	for i := 0; i < 500; i++ {
		s.Randomize(PaletteRandom)
		for _, slot := range Slots {
			assert.True(t, IsValidHex(string(s.Color(slot))), "color %q", s.Color(slot))
			assert.Equal(t, strings.ToLower(string(s.Color(slot))), string(s.Color(slot)))
		}
		assert.Contains(t, DefaultDirections, s.Direction())
	}
}

func TestRandomize_Curated(t *testing.T) {
	s := newTestState(4, 1)

	s.Randomize(PaletteCurated)

	assert.Equal(t, DefaultPalettes[4].From, s.Color(Slot1))
	assert.Equal(t, DefaultPalettes[4].To, s.Color(Slot2))
	assert.Equal(t, DefaultDirections[1], s.Direction())
}

func TestRandomize_CuratedAlwaysFromTable(t *testing.T) {
	palettes := []Palette{
		{Name: "a", From: "#000000", To: "#111111"},
		{Name: "b", From: "#222222", To: "#333333"},
	}
	directions := []Direction{DirectionToTop, DirectionToLeft}
	s := NewGradientState(GradientConfig{
		Directions: directions,
		Palettes:   palettes,
		Rand:       rand.New(rand.NewPCG(7, 7)),
	})

	for i := 0; i < 200; i++ {
		s.Randomize(PaletteCurated)
		assert.True(t, ContainsPair(palettes, s.Color(Slot1), s.Color(Slot2)))
		assert.Contains(t, directions, s.Direction())
	}
}

func TestRandomColor_ZeroPadded(t *testing.T) {
	assert.Equal(t, Color("#000000"), RandomColor(&seqRand{values: []int{0}}))
	assert.Equal(t, Color("#000abc"), RandomColor(&seqRand{values: []int{0xabc}}))
	assert.Equal(t, Color("#ffffff"), RandomColor(&seqRand{values: []int{0xffffff}}))
}

func TestInvalidSlotPanics(t *testing.T) {
	s := newTestState()
	assert.Panics(t, func() { s.Color(Slot(3)) })
}

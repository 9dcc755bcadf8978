package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
	}{
		{"lowercase with hash", "#abcdef", "#abcdef"},
		{"uppercase without hash", "ABCDEF", "#abcdef"},
		{"mixed case", "#AbCdEf", "#abcdef"},
		{"surrounding whitespace", "  112233\t", "#112233"},
		{"whitespace around hash", " #00FF00 ", "#00ff00"},
		{"digits only", "000000", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only hash", "#"},
		{"non hex letters", "xyz123"},
		{"too short", "#abc"},
		{"too long", "#abcdef0"},
		{"double hash", "##abcdef"},
		{"inner space", "#abc def"},
		{"alpha channel", "#abcdef80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColor(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHex)
			assert.False(t, IsValidHex(tt.input))
		})
	}
}

func TestMustParseColor_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseColor("nope") })
	assert.Equal(t, Color("#0a0b0c"), MustParseColor("0A0B0C"))
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color("#1d3557").RGB()
	assert.Equal(t, uint8(0x1d), r)
	assert.Equal(t, uint8(0x35), g)
	assert.Equal(t, uint8(0x57), b)

	assert.Equal(t, Color("#1d3557"), ColorFromRGB(0x1d, 0x35, 0x57))
}

func TestColorAdjust(t *testing.T) {
	c := Color("#10fff0")

	assert.Equal(t, Color("#20fff0"), c.Adjust(ChannelRed, 16))
	assert.Equal(t, Color("#10fff0"), c.Adjust(ChannelGreen, 1), "clamps at 255")
	assert.Equal(t, Color("#10ff00"), c.Adjust(ChannelBlue, -300), "clamps at 0")
	assert.Equal(t, uint8(0xf0), c.Channel(ChannelBlue))
}

package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hexPattern is the strict form every committed color must match
var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color is a canonical 6-digit RGB hex value, lowercase with a leading '#'.
// Values are only produced by ParseColor, ColorFromRGB or the literals in this
// package, so a Color is always well-formed.
type Color string

// Channel identifies one of the three byte channels of a Color
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// String returns the single-letter channel name
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "R"
	case ChannelGreen:
		return "G"
	case ChannelBlue:
		return "B"
	}
	return "?"
}

// NormalizeHex trims whitespace and prepends '#' when missing.
// The result is not validated.
func NormalizeHex(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// IsValidHex reports whether raw, once normalized, is a 6-digit hex color
func IsValidHex(raw string) bool {
	return hexPattern.MatchString(NormalizeHex(raw))
}

// ParseColor normalizes raw free-form text into a canonical Color.
// Accepts any case, an optional leading '#', and surrounding whitespace.
func ParseColor(raw string) (Color, error) {
	s := NormalizeHex(raw)
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, raw)
	}
	return Color(strings.ToLower(s)), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Intended for literals and tests.
func MustParseColor(raw string) Color {
	c, err := ParseColor(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFromRGB builds a canonical Color from its byte channels
func ColorFromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RGB returns the three byte channels of the color
func (c Color) RGB() (r, g, b uint8) {
	if len(c) != 7 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Channel returns the value of a single channel
func (c Color) Channel(ch Channel) uint8 {
	r, g, b := c.RGB()
	switch ch {
	case ChannelGreen:
		return g
	case ChannelBlue:
		return b
	}
	return r
}

// Adjust returns a copy of the color with one channel moved by delta,
// clamped to [0, 255]
func (c Color) Adjust(ch Channel, delta int) Color {
	r, g, b := c.RGB()
	channels := [3]uint8{r, g, b}
	v := int(channels[ch]) + delta
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	channels[ch] = uint8(v)
	return ColorFromRGB(channels[0], channels[1], channels[2])
}

// String implements fmt.Stringer
func (c Color) String() string {
	return string(c)
}

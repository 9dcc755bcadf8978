package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is a CSS linear-gradient direction keyword or angle
type Direction string

const (
	DirectionToBottom      Direction = "to bottom"
	DirectionToBottomLeft  Direction = "to bottom left"
	DirectionToBottomRight Direction = "to bottom right"
	DirectionToLeft        Direction = "to left"
	DirectionToRight       Direction = "to right"
	DirectionToTop         Direction = "to top"
	DirectionToTopLeft     Direction = "to top left"
	DirectionToTopRight    Direction = "to top right"
	Direction45Deg         Direction = "45deg"
	Direction135Deg        Direction = "135deg"
)

// DefaultDirections is the fixed set offered by the direction selector
var DefaultDirections = []Direction{
	DirectionToRight,
	DirectionToLeft,
	DirectionToBottom,
	DirectionToTop,
	DirectionToBottomRight,
	DirectionToBottomLeft,
	DirectionToTopRight,
	DirectionToTopLeft,
	Direction45Deg,
	Direction135Deg,
}

// keywordAngles maps CSS side/corner keywords to their angle in degrees.
// Corners are treated as a square box.
var keywordAngles = map[Direction]float64{
	DirectionToTop:         0,
	DirectionToTopRight:    45,
	DirectionToRight:       90,
	DirectionToBottomRight: 135,
	DirectionToBottom:      180,
	DirectionToBottomLeft:  225,
	DirectionToLeft:        270,
	DirectionToTopLeft:     315,
}

// Angle returns the gradient line angle in degrees, clockwise from "to top".
// Returns false when the direction is neither a known keyword nor a "<n>deg" angle.
func (d Direction) Angle() (float64, bool) {
	if a, ok := keywordAngles[d]; ok {
		return a, true
	}
	s := strings.TrimSpace(string(d))
	if !strings.HasSuffix(s, "deg") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// String implements fmt.Stringer
func (d Direction) String() string {
	return string(d)
}

// ParseDirection matches raw against the allowed set (case-insensitive,
// surrounding whitespace ignored)
func ParseDirection(raw string, allowed []Direction) (Direction, error) {
	want := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	for _, d := range allowed {
		if string(d) == want {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, raw)
}

// ParseDirections converts configuration strings into directions, rejecting
// anything the preview cannot draw
func ParseDirections(values []string) ([]Direction, error) {
	result := make([]Direction, 0, len(values))
	for _, v := range values {
		d := Direction(strings.ToLower(strings.Join(strings.Fields(v), " ")))
		if _, ok := d.Angle(); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, v)
		}
		result = append(result, d)
	}
	return result, nil
}

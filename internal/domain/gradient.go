package domain

import (
	"fmt"
	"strings"
)

// GradientSpec fully determines the rendered gradient and its CSS
type GradientSpec struct {
	Direction Direction
	From      Color
	To        Color
}

// Rendered is the derived output consumed by the presentation layer
type Rendered struct {
	CSS      string
	Gradient string
	Spec     GradientSpec
}

// Gradient returns the descriptor "linear-gradient(<direction>, <c1>, <c2>)"
func (g GradientSpec) Gradient() string {
	return fmt.Sprintf("linear-gradient(%s, %s, %s)", g.Direction, g.From, g.To)
}

// CSS returns the three declaration lines in fixed order: flat fallback,
// vendor-prefixed gradient, unprefixed gradient. No trailing newline.
func (g GradientSpec) CSS() string {
	gradient := g.Gradient()
	return strings.Join([]string{
		fmt.Sprintf("background: %s;", g.From),
		fmt.Sprintf("background: -webkit-%s;", gradient),
		fmt.Sprintf("background: %s;", gradient),
	}, "\n")
}

// Render derives both outputs
func (g GradientSpec) Render() Rendered {
	return Rendered{
		CSS:      g.CSS(),
		Gradient: g.Gradient(),
		Spec:     g,
	}
}

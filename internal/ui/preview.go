package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/renato0307/ombre/internal/domain"
)

// defaultAngle is the CSS default direction ("to bottom")
const defaultAngle = 180

// upperHalfBlock draws two vertical pixels per cell: foreground on top,
// background below. With the usual 1:2 cell ratio the pixels are square.
const upperHalfBlock = "▀"

// gradientPixels rasterises a gradient into a width x height grid of square
// pixels following the CSS linear-gradient geometry: the gradient line runs
// through the centre at the given angle and its length is chosen so that the
// corners reach 0 and 1.
func gradientPixels(spec domain.GradientSpec, width, height int) [][]colorful.Color {
	if width <= 0 || height <= 0 {
		return nil
	}

	from, err := colorful.Hex(string(spec.From))
	if err != nil {
		from = colorful.Color{}
	}
	to, err := colorful.Hex(string(spec.To))
	if err != nil {
		to = colorful.Color{}
	}

	angle, ok := spec.Direction.Angle()
	if !ok {
		angle = defaultAngle
	}
	rad := angle * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)

	w, h := float64(width), float64(height)
	length := math.Abs(w*dx) + math.Abs(h*dy)

	pixels := make([][]colorful.Color, height)
	for y := range height {
		row := make([]colorful.Color, width)
		py := float64(y) + 0.5 - h/2
		for x := range width {
			px := float64(x) + 0.5 - w/2
			t := (px*dx+py*dy)/length + 0.5
			row[x] = from.BlendRgb(to, math.Max(0, math.Min(1, t))).Clamped()
		}
		pixels[y] = row
	}
	return pixels
}

// renderPreview draws the gradient into width x rows terminal cells
func renderPreview(spec domain.GradientSpec, width, rows int) string {
	pixels := gradientPixels(spec, width, rows*2)
	if pixels == nil {
		return ""
	}

	var b strings.Builder
	for row := range rows {
		top, bottom := pixels[row*2], pixels[row*2+1]
		for x := range width {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top[x].Hex())).
				Background(lipgloss.Color(bottom[x].Hex())).
				Render(upperHalfBlock))
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

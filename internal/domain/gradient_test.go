package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientSpecCSS(t *testing.T) {
	spec := GradientSpec{Direction: DirectionToRight, From: "#112233", To: "#445566"}

	expected := "background: #112233;\n" +
		"background: -webkit-linear-gradient(to right, #112233, #445566);\n" +
		"background: linear-gradient(to right, #112233, #445566);"

	assert.Equal(t, "linear-gradient(to right, #112233, #445566)", spec.Gradient())
	assert.Equal(t, expected, spec.CSS())
}

func TestGradientSpecCSS_LineShape(t *testing.T) {
	spec := GradientSpec{Direction: Direction135Deg, From: "#000000", To: "#ffffff"}

	lines := strings.Split(spec.CSS(), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, ";"), "line %q", line)
	}
	assert.Equal(t, "background: #000000;", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "background: -webkit-linear-gradient("))
	assert.True(t, strings.HasPrefix(lines[2], "background: linear-gradient("))
	assert.False(t, strings.HasSuffix(spec.CSS(), "\n"))
}

func TestGradientSpecRender(t *testing.T) {
	spec := GradientSpec{Direction: DirectionToTop, From: "#0f172a", To: "#1e293b"}

	r := spec.Render()
	assert.Equal(t, spec, r.Spec)
	assert.Equal(t, spec.CSS(), r.CSS)
	assert.Equal(t, spec.Gradient(), r.Gradient)
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/renato0307/ombre/internal/domain"
)

// DirectionsCmd lists the configured gradient directions
type DirectionsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type directionOutput struct {
	Angle     *float64 `json:"angle,omitempty"`
	Direction string   `json:"direction"`
}

// Run executes the directions command
func (d *DirectionsCmd) Run(cli *CLI) error {
	directions := cli.Container.GradientService.Directions()

	if d.Format == formatTable {
		fmt.Fprint(cli.out(), renderTable([]string{"#", "Direction", "Angle (deg)"}, directionRows(directions)))
		return nil
	}

	output := make([]directionOutput, 0, len(directions))
	for _, dir := range directions {
		item := directionOutput{Direction: dir.String()}
		if angle, ok := dir.Angle(); ok {
			item.Angle = &angle
		}
		output = append(output, item)
	}
	return writeJSON(cli.out(), output)
}

// directionRows formats directions as table rows
func directionRows(directions []domain.Direction) [][]string {
	rows := make([][]string, 0, len(directions))
	for i, dir := range directions {
		angle := "-"
		if a, ok := dir.Angle(); ok {
			angle = strconv.FormatFloat(a, 'f', -1, 64)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), dir.String(), angle})
	}
	return rows
}

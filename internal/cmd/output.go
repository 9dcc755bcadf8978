package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bndr/gotabulate"

	"github.com/renato0307/ombre/internal/domain"
)

// Output formats shared by the print commands
const (
	formatCSS   = "css"
	formatJSON  = "json"
	formatTable = "table"
)

// renderedOutput is the JSON shape of a rendered gradient
type renderedOutput struct {
	CSS       string `json:"css"`
	Direction string `json:"direction"`
	From      string `json:"from"`
	Gradient  string `json:"gradient"`
	To        string `json:"to"`
}

// renderTable formats rows as a grid table
func renderTable(headers []string, rows [][]string) string {
	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	return t.Render("grid")
}

// writeJSON writes v as indented JSON followed by a newline
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeRendered prints a rendered gradient as raw CSS or JSON
func writeRendered(w io.Writer, rendered domain.Rendered, format string) error {
	switch format {
	case formatCSS:
		_, err := fmt.Fprintln(w, rendered.CSS)
		return err
	case formatJSON:
		return writeJSON(w, renderedOutput{
			CSS:       rendered.CSS,
			Direction: rendered.Spec.Direction.String(),
			From:      rendered.Spec.From.String(),
			Gradient:  rendered.Gradient,
			To:        rendered.Spec.To.String(),
		})
	}
	return fmt.Errorf("unknown output format %q", format)
}

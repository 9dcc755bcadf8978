package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/renato0307/ombre/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsFilePath()
	example := config.GetSettingsExample()

	if s.Format != formatTable {
		return writeJSON(cli.out(), map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	out := cli.out()
	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)
	fmt.Fprint(out, renderTable([]string{"Key", "Example"}, settingsRows(example)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure ombre.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")

	return nil
}

// settingsRows formats the example map as sorted table rows
func settingsRows(example map[string]any) [][]string {
	keys := make([]string, 0, len(example))
	for k := range example {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		var valueStr string
		switch v := example[k].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, err := json.Marshal(v)
			if err != nil {
				valueStr = fmt.Sprintf("%v", v)
			} else {
				valueStr = string(data)
			}
		}
		rows = append(rows, []string{k, valueStr})
	}
	return rows
}

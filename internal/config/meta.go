package config

import (
	"reflect"
	"strings"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"swap": "x",
			"help": []string{"?", "f1"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "status_clear_delay_ms":
				return DefaultStatusClearDelayMs
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		if fieldName == "clipboard" {
			return DefaultClipboard
		}
		return "example"
	case reflect.Slice:
		if fieldName == "palettes" {
			return []any{
				map[string]string{"name": "sunset", "from": "#ff5e62", "to": "#ff9966"},
				[]string{"#0f172a", "#1e293b"},
			}
		}
		if t.Name() == "StringArray" || t.Elem().Kind() == reflect.String {
			if fieldName == "directions" {
				return []string{"to right", "to bottom", "45deg"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", format, formatYAML, formatJSON)
	}
}

// render writes v to w in the selected format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

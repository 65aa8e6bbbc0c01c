package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/solver"
)

func writeReport(w io.Writer, rep solver.Report, format string) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprint(w, rep.String())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rep)
	default:
		return fmt.Errorf("unsupported format: %s (use text, json or yaml)", format)
	}
}

package application

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/dotenv/internal/setting"
)

// Output formats accepted by Render.
const (
	FormatEnv  = "env"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatEnv, FormatJSON, FormatYAML}
}

// Render writes settings to w. The env format prints one KEY=value line per
// setting and a bare KEY for unset ones; json and yaml print an object with
// null for unset values.
func Render(w io.Writer, settings []setting.Setting, format string) error {
	switch format {
	case FormatEnv:
		for _, s := range settings {
			if _, err := fmt.Fprintln(w, s.String()); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toMap(settings))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(toMap(settings)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func toMap(settings []setting.Setting) map[string]*string {
	out := make(map[string]*string, len(settings))
	for _, s := range settings {
		if value, ok := s.Lookup(); ok {
			out[s.Key()] = &value
		} else {
			out[s.Key()] = nil
		}
	}
	return out
}

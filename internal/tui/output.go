package tui

import (
	"encoding/json"
	"io"
)

// WriteJSON outputs a value as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

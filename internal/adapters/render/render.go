// Package render formats finished setups for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dabron/scythe/internal/app"
)

// Renderer writes a setup to w.
type Renderer interface {
	Render(w io.Writer, s app.Setup) error
}

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// New returns the renderer for format. noColor strips terminal colors.
func New(format Format, noColor bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &Text{NoColor: noColor}, nil
	case FormatTable:
		return &Table{NoColor: noColor}, nil
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, table or json)", format)
	}
}

// JSON writes the setup as an indented Document.
type JSON struct{}

func (JSON) Render(w io.Writer, s app.Setup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(s))
}

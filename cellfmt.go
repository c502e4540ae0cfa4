package cellfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrRowLength         = errors.New("row length does not match column count")
	ErrInvalidStyle      = errors.New("invalid style")
)

// Format represents an output target for a rendered table.
type Format string

const (
	HTML  Format = "html"
	Table Format = "table"
	JSON  Format = "json"
)

var formats = []Format{HTML, Table, JSON}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, typically a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders every cell of g with r and writes the result to w in format f.
// The grid is validated first; a row whose length differs from the column
// count aborts with [ErrRowLength] before anything is written.
func Write(w io.Writer, f Format, g Grid, r Renderer, opts ...TableOption) error {
	cells, err := r.RenderTable(g)
	if err != nil {
		return err
	}
	switch f {
	case HTML:
		return writeHTML(w, g, cells)
	case Table:
		return writeTable(w, g, cells, opts...)
	case JSON:
		return writeJSON(w, g, cells)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders g and returns the bytes.
func Marshal(f Format, g Grid, r Renderer, opts ...TableOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, g, r, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package sink

import (
	"io"
	"strings"

	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/scene"
)

// Format names an output format.
type Format string

const (
	FormatCollada Format = "dae"
	FormatSVG     Format = "svg"
	FormatJSON    Format = "json"
)

// Formats lists every supported format in the order they are rendered.
var Formats = []Format{FormatCollada, FormatSVG, FormatJSON}

// Ext returns the file extension of f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatCollada:
		return "model/vnd.collada+xml"
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat parses a format name. A leading dot is accepted, so file
// extensions parse as well.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatCollada, FormatSVG, FormatJSON:
		return f, nil
	case "collada":
		return FormatCollada, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (want dae, svg or json)", s)
}

// Scene is a scene that can serialize itself.
type Scene interface {
	scene.Scene
	io.WriterTo
}

// New returns an empty scene for f.
func New(f Format) (Scene, error) {
	switch f {
	case FormatCollada:
		return NewCollada(), nil
	case FormatSVG:
		return NewSVG(), nil
	case FormatJSON:
		return NewJSON(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", string(f))
}

// Write writes src to path. See [scene.WriteFile].
func Write(path string, src io.WriterTo) error {
	return scene.WriteFile(path, src)
}

package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/scene"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Encode writes s as a description in format f. Compartments that span a
// single row and bottom alignments are omitted, as is the default color.
func Encode(w io.Writer, s *shelf.Shelf, f Format) error {
	d := fromShelf(s)
	var err error
	switch f {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(d); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(d)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported description format %q", string(f))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Canonical returns the compact JSON encoding of s. Two shelves with the
// same rows and dimensions always produce the same bytes.
func Canonical(s *shelf.Shelf) ([]byte, error) {
	return json.Marshal(fromShelf(s))
}

// Export writes s to a description file at path, in the format of its
// extension. The file is replaced only once the whole description encoded.
func Export(s *shelf.Shelf, path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s, f); err != nil {
		return err
	}
	return scene.WriteFile(path, &buf)
}

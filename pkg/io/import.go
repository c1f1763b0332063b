package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Format is a description file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf returns the format for a file name or bare extension.
func FormatOf(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = "." + strings.ToLower(name)
	}
	switch ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported description format %q (want .toml, .yaml or .json)", name)
}

// Decode reads a description in format f from r.
//
// The result is not validated; call [shelf.Shelf.Validate] before laying it
// out. Decode does not close r.
func Decode(r io.Reader, f Format) (*shelf.Shelf, error) {
	var d description
	var err error
	switch f {
	case FormatTOML:
		err = decodeTOML(r, &d)
	case FormatYAML:
		err = decodeYAML(r, &d)
	case FormatJSON:
		err = decodeJSON(r, &d)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported description format %q", string(f))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", f)
	}
	return d.toShelf()
}

func decodeTOML(r io.Reader, d *description) error {
	md, err := toml.NewDecoder(r).Decode(d)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(r io.Reader, d *description) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty document")
		}
		return err
	}
	return nil
}

func decodeJSON(r io.Reader, d *description) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(d)
}

// DecodeBytes decodes data, detecting the format from its first non-blank
// character when f is empty: '{' is JSON, a leading "key:" line is YAML and
// anything else TOML.
func DecodeBytes(data []byte, f Format) (*shelf.Shelf, error) {
	if f == "" {
		f = sniff(data)
	}
	return Decode(bytes.NewReader(data), f)
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	for _, line := range strings.Split(string(trimmed), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "---" || strings.HasPrefix(line, "- ") {
			return FormatYAML
		}
		colon, eq := strings.Index(line, ":"), strings.Index(line, "=")
		if colon > 0 && (eq < 0 || colon < eq) {
			return FormatYAML
		}
		return FormatTOML
	}
	return FormatTOML
}

// Import reads the description file at path. The format follows from the
// extension.
func Import(path string) (*shelf.Shelf, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	s, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SPDX-License-Identifier: MIT

package pit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format names a serialisation of the canonical parameter schema.
type Format string

const (
	// FormatJSON is the canonical JSON document.
	FormatJSON Format = "json"
	// FormatTOML carries the same fields; collections become arrays of tables.
	FormatTOML Format = "toml"
)

// requiredFields are the scalar fields every document must carry.
// Collections may be omitted and decode as empty.
var requiredFields = []string{
	"inner_radius",
	"outer_radius",
	"pit_depth",
	"floor_thickness",
	"wall_thickness",
	"sector_count",
	"sector_joints_width",
	"cryostat_plinth_radius",
	"cryostat_plinth_height",
}

// requiredElementFields lists, per collection, the fields each element must carry.
var requiredElementFields = map[string][]string{
	"duct_rings": {"radius", "width", "elevation", "count", "duct_width"},
	"ports":      {"angle_deg", "width", "start_radius", "end_radius"},
	"stairs":     {"angle_deg", "run_width", "start_radius", "end_radius"},
}

// ParseFormat maps a format name ("json", "toml", case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Decode reads one parameter document in the given format.
func Decode(r io.Reader, format Format) (Params, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatTOML:
		return DecodeTOML(r)
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes p in the given format.
func Encode(w io.Writer, p Params, format Format) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, p)
	case FormatTOML:
		return EncodeTOML(w, p)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeJSON reads a canonical JSON parameter document.
// Unknown fields are rejected and every scalar field is required.
func DecodeJSON(r io.Reader) (Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Params{}, fmt.Errorf("pit: read json: %w", err)
	}

	var doc map[string]any
	if err = json.Unmarshal(data, &doc); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err = checkRequired(doc); err != nil {
		return Params{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var p Params
	if err = dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return p.Clone(), nil
}

// EncodeJSON writes p as indented canonical JSON.
func EncodeJSON(w io.Writer, p Params) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(p.Clone())
}

// DecodeTOML reads a TOML parameter document with the same strictness
// as DecodeJSON.
func DecodeTOML(r io.Reader) (Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Params{}, fmt.Errorf("pit: read toml: %w", err)
	}

	var doc map[string]any
	if err = toml.Unmarshal(data, &doc); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err = checkRequired(doc); err != nil {
		return Params{}, err
	}

	var p Params
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err = dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return p.Clone(), nil
}

// EncodeTOML writes p as TOML.
func EncodeTOML(w io.Writer, p Params) error {
	data, err := toml.Marshal(p.Clone())
	if err != nil {
		return fmt.Errorf("pit: encode toml: %w", err)
	}
	_, err = w.Write(data)

	return err
}

// ReadFile decodes the parameter document at path; the format follows the
// file extension.
func ReadFile(path string) (Params, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Params{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Params{}, err
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// WriteFile encodes p to path; the format follows the file extension.
func WriteFile(path string, p Params) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, p, format); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// checkRequired reports the first missing field of a generically decoded
// document, element fields included.
func checkRequired(doc map[string]any) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrDecode)
	}
	for _, name := range requiredFields {
		if _, ok := doc[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	for _, collection := range []string{"duct_rings", "ports", "stairs"} {
		raw, ok := doc[collection]
		if !ok || raw == nil {
			continue
		}
		elems, err := elementMaps(collection, raw)
		if err != nil {
			return err
		}
		for i, elem := range elems {
			for _, name := range requiredElementFields[collection] {
				if _, ok := elem[name]; !ok {
					return fmt.Errorf("%w: %s[%d].%s", ErrMissingField, collection, i, name)
				}
			}
		}
	}

	return nil
}

// elementMaps normalises the shapes produced by encoding/json ([]any) and
// go-toml ([]any or []map[string]any) into a slice of element maps.
func elementMaps(collection string, raw any) ([]map[string]any, error) {
	switch v := raw.(type) {
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrDecode, collection, i)
			}
			out = append(out, m)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a list", ErrDecode, collection)
	}
}

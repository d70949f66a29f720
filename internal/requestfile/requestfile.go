// Package requestfile loads API request documents written by operators in
// YAML (or JSON, which is valid YAML) using the same snake_case field names
// as the wire format.
package requestfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load decodes every request in the file at path. A file may hold a single
// mapping, a sequence of mappings, or several YAML documents.
func Load[T any](fs afero.Fs, path string) ([]T, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading request file: %w", err)
	}

	docs, err := parse(src)
	if err != nil {
		return nil, fmt.Errorf("error parsing request file %s: %w", path, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("request file %s is empty", path)
	}

	out := make([]T, 0, len(docs))
	for i, doc := range docs {
		var v T
		if err := decode(doc, &v); err != nil {
			return nil, fmt.Errorf("error decoding request %d in %s: %w", i+1, path, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// LoadOne decodes a file that must hold exactly one request.
func LoadOne[T any](fs afero.Fs, path string) (T, error) {
	var zero T

	reqs, err := Load[T](fs, path)
	if err != nil {
		return zero, err
	}
	if len(reqs) != 1 {
		return zero, fmt.Errorf("request file %s holds %d requests, expected 1", path, len(reqs))
	}
	return reqs[0], nil
}

func parse(src []byte) ([]map[string]any, error) {
	var docs []map[string]any

	dec := yaml.NewDecoder(bytes.NewReader(src))
	for {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch v := raw.(type) {
		case nil:
			// Empty document.
		case map[string]any:
			docs = append(docs, v)
		case []any:
			for i, item := range v {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("item %d is a %T, expected a mapping", i+1, item)
				}
				docs = append(docs, m)
			}
		default:
			return nil, fmt.Errorf("document is a %T, expected a mapping or a sequence", raw)
		}
	}

	return docs, nil
}

// decode maps a parsed document onto a request struct through its json
// tags. Scalars are converted weakly, so an employee_id written as a bare
// number still lands in a string field.
func decode(doc map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(doc)
}

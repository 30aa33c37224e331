// Package record loads consultation documents from disk.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrInvalidJSON is returned when the input is not a single valid JSON
	// document.
	ErrInvalidJSON = errors.New("could not decode JSON")
)

// Load reads the file at path and decodes it into a loosely typed document
// (maps, slices, strings, json.Number, bools, nil).  No schema is enforced;
// shaping the document is the extractor's job.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses exactly one JSON document from r.  Numbers are kept as
// json.Number so they render the way they were written.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidJSON)
	}
	return doc, nil
}

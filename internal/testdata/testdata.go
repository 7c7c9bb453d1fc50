// Package testdata loads the suite's JSON data document. The file is read
// once per session by the harness; a missing file yields an empty document
// so scenarios can fall back to their built-in defaults.
package testdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Passengers is one named passenger configuration.
type Passengers struct {
	Adults  int `json:"adults"`
	Infants int `json:"infants"`
}

// Document is the suite data file, keyed by scenario-relevant categories.
type Document struct {
	Origins          map[string]string     `json:"origins"`
	Destination      map[string]string     `json:"destination"`
	Dates            map[string]string     `json:"dates"`
	Passengers       map[string]Passengers `json:"passengers"`
	ExpectedMessages map[string]string     `json:"expected_messages"`
}

// Load reads the data document at path. A missing file is not an error.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read test data: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode test data %s: %w", path, err)
	}
	return &doc, nil
}

// Origin returns the named origin, or fallback when absent.
func (d *Document) Origin(key, fallback string) string {
	return lookup(d.Origins, key, fallback)
}

// Dest returns the named destination, or fallback when absent.
func (d *Document) Dest(key, fallback string) string {
	return lookup(d.Destination, key, fallback)
}

// Date returns the named date, or fallback when absent.
func (d *Document) Date(key, fallback string) string {
	return lookup(d.Dates, key, fallback)
}

// ExpectedMessage returns the named expected validation message, "" when the
// suite data does not pin one down.
func (d *Document) ExpectedMessage(key string) string {
	return lookup(d.ExpectedMessages, key, "")
}

func lookup(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return fallback
}

package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the optional suite.yaml at the repository root, carrying the
// metadata that heads the reports.
type Manifest struct {
	Title       string `yaml:"title"`
	Environment string `yaml:"environment"`
}

// DefaultManifest is used when no suite.yaml is present.
var DefaultManifest = Manifest{
	Title:       "Flight Booking Automation Test Report",
	Environment: "Qantas Flight Booking System",
}

// LoadManifest reads the suite manifest at path. A missing file yields the
// defaults; a malformed file is an error.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultManifest, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("read suite manifest: %w", err)
	}

	m := DefaultManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode suite manifest %s: %w", path, err)
	}
	if m.Title == "" {
		m.Title = DefaultManifest.Title
	}
	if m.Environment == "" {
		m.Environment = DefaultManifest.Environment
	}
	return m, nil
}

// Package report collects per-scenario results during a run and renders
// them as timestamped HTML and JSON artifacts, plus a rolling latest copy.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flightqa/bookingflow/internal/artifacts"
)

// ScenarioResult is the outcome of one scenario.
type ScenarioResult struct {
	Name        string   `json:"name"`
	Passed      bool     `json:"passed"`
	DurationMs  float64  `json:"duration_ms"`
	Steps       []string `json:"steps,omitempty"`
	Errors      []string `json:"errors,omitempty"`
	Screenshots []string `json:"screenshots,omitempty"`
	PageURL     string   `json:"page_url,omitempty"`
}

// RunResult aggregates a whole suite run.
type RunResult struct {
	RunID       string           `json:"run_id"`
	Title       string           `json:"title"`
	Environment string           `json:"environment"`
	StartedAt   time.Time        `json:"started_at"`
	DurationMs  float64          `json:"duration_ms"`
	Passed      bool             `json:"passed"`
	Scenarios   []ScenarioResult `json:"scenarios"`
}

// Recorder accumulates scenario results. Safe for concurrent use; the test
// runner may interleave scenario completions when -parallel is raised.
type Recorder struct {
	mu    sync.Mutex
	run   RunResult
	start time.Time
}

// NewRecorder starts a run record with a fresh run ID.
func NewRecorder(manifest Manifest) *Recorder {
	now := time.Now()
	return &Recorder{
		run: RunResult{
			RunID:       uuid.NewString(),
			Title:       manifest.Title,
			Environment: manifest.Environment,
			StartedAt:   now,
			Passed:      true,
		},
		start: now,
	}
}

// Record appends one scenario result.
func (r *Recorder) Record(result ScenarioResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.run.Scenarios = append(r.run.Scenarios, result)
	if !result.Passed {
		r.run.Passed = false
	}
}

// Snapshot finalizes the run duration and returns a copy of the record.
func (r *Recorder) Snapshot() RunResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := r.run
	run.DurationMs = float64(time.Since(r.start).Milliseconds())
	run.Scenarios = append([]ScenarioResult(nil), r.run.Scenarios...)
	return run
}

// WriteJSON renders the run record as indented JSON.
func WriteJSON(w io.Writer, run RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// WriteArtifacts writes the timestamped HTML and JSON reports into dir and
// refreshes the rolling latest copy. Returns the HTML report path.
func WriteArtifacts(dir string, run RunResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	htmlPath := filepath.Join(dir, artifacts.TimestampedName("report", ".html"))
	htmlFile, err := os.Create(htmlPath)
	if err != nil {
		return "", fmt.Errorf("create html report: %w", err)
	}
	defer htmlFile.Close()
	if err := WriteHTML(htmlFile, run); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}

	jsonPath := filepath.Join(dir, artifacts.TimestampedName("results", ".json"))
	jsonFile, err := os.Create(jsonPath)
	if err != nil {
		return "", fmt.Errorf("create json results: %w", err)
	}
	defer jsonFile.Close()
	if err := WriteJSON(jsonFile, run); err != nil {
		return "", fmt.Errorf("render json results: %w", err)
	}

	if err := copyFile(htmlPath, filepath.Join(dir, artifacts.LatestReport)); err != nil {
		return "", fmt.Errorf("refresh latest report: %w", err)
	}
	return htmlPath, nil
}

// RegenerateLatest rebuilds latest_report.html from a JSON results file.
func RegenerateLatest(dir, resultsPath string) error {
	raw, err := os.ReadFile(resultsPath)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}
	var run RunResult
	if err := json.Unmarshal(raw, &run); err != nil {
		return fmt.Errorf("decode results %s: %w", resultsPath, err)
	}

	out, err := os.Create(filepath.Join(dir, artifacts.LatestReport))
	if err != nil {
		return fmt.Errorf("create latest report: %w", err)
	}
	defer out.Close()
	return WriteHTML(out, run)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

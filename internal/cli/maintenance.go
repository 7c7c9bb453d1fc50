package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flightqa/bookingflow/internal/artifacts"
	"github.com/flightqa/bookingflow/internal/config"
	"github.com/flightqa/bookingflow/internal/report"
)

// RunClean removes every generated artifact directory.
func RunClean(cfg config.ArtifactsConfig) error {
	if err := artifacts.RemoveAll(cfg); err != nil {
		return err
	}
	fmt.Println("artifact directories removed")
	return nil
}

// RunReport rebuilds latest_report.html from the newest JSON results file in
// the reports directory.
func RunReport(reportsDir string) error {
	newest, err := newestResults(reportsDir)
	if err != nil {
		return err
	}
	if err := report.RegenerateLatest(reportsDir, newest); err != nil {
		return err
	}
	fmt.Printf("regenerated %s from %s\n",
		filepath.Join(reportsDir, artifacts.LatestReport), newest)
	return nil
}

// newestResults picks the lexically greatest results_*.json, which is the
// newest because the names embed a sortable timestamp.
func newestResults(reportsDir string) (string, error) {
	entries, err := os.ReadDir(reportsDir)
	if err != nil {
		return "", fmt.Errorf("read reports dir: %w", err)
	}
	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "results_") && strings.HasSuffix(name, ".json") {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no results files in %s", reportsDir)
	}
	sort.Strings(candidates)
	return filepath.Join(reportsDir, candidates[len(candidates)-1]), nil
}

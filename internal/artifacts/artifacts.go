// Package artifacts owns the on-disk layout of run output: logs, reports,
// and screenshots live in fixed directories with timestamped names.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flightqa/bookingflow/internal/config"
)

const timestampLayout = "20060102_150405"

// EnsureDirs creates every artifact directory that does not exist yet.
func EnsureDirs(cfg config.ArtifactsConfig) error {
	for _, dir := range []string{cfg.LogsDir, cfg.ReportsDir, cfg.ScreenshotsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create artifact dir %s: %w", dir, err)
		}
	}
	return nil
}

// RemoveAll deletes the artifact directories and everything in them.
func RemoveAll(cfg config.ArtifactsConfig) error {
	for _, dir := range []string{cfg.LogsDir, cfg.ReportsDir, cfg.ScreenshotsDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("remove artifact dir %s: %w", dir, err)
		}
	}
	return nil
}

// TimestampedName builds "<name>_<ts><ext>" using the shared layout.
func TimestampedName(name, ext string) string {
	return fmt.Sprintf("%s_%s%s", name, time.Now().Format(timestampLayout), ext)
}

// ScreenshotPath builds a timestamped screenshot path in dir. The _FAILURE
// suffix marks failure-state captures so they stand out in listings.
func ScreenshotPath(dir, testName string, failed bool) string {
	suffix := "final"
	if failed {
		suffix = "FAILURE"
	}
	file := fmt.Sprintf("%s_%s_%s.png", testName, time.Now().Format(timestampLayout), suffix)
	return filepath.Join(dir, file)
}

// LatestReport is the rolling copy kept next to the timestamped reports.
const LatestReport = "latest_report.html"

package config

// ArtifactsConfig holds the output directories for run artifacts.
type ArtifactsConfig struct {
	LogsDir        string
	ReportsDir     string
	ScreenshotsDir string
}

// LoadArtifactsConfig loads artifact directories from environment variables,
// defaulting to the conventional layout at the repository root.
func LoadArtifactsConfig(getenv func(string) string) ArtifactsConfig {
	cfg := ArtifactsConfig{
		LogsDir:        "logs",
		ReportsDir:     "reports",
		ScreenshotsDir: "screenshots",
	}
	if dir := getenv("LOGS_DIR"); dir != "" {
		cfg.LogsDir = dir
	}
	if dir := getenv("REPORTS_DIR"); dir != "" {
		cfg.ReportsDir = dir
	}
	if dir := getenv("SCREENSHOTS_DIR"); dir != "" {
		cfg.ScreenshotsDir = dir
	}
	return cfg
}

package cli

import (
	"fmt"
	"sort"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/flightqa/bookingflow/internal/booking"
	"github.com/flightqa/bookingflow/internal/config"
)

// CheckDependencies holds everything the check command needs.
type CheckDependencies struct {
	Suite     *config.SuiteConfig
	Artifacts config.ArtifactsConfig
	Logger    *zap.Logger
}

// RunCheck opens the booking page in a fresh browser, verifies the form is
// ready, and prints a form-state snapshot. Returns an error if the page
// never becomes ready, so the exit code doubles as a connectivity probe.
func RunCheck(deps CheckDependencies) error {
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(deps.Suite.Headless),
		SlowMo:   playwright.Float(float64(deps.Suite.SlowMo.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	pwPage, err := browser.NewPage()
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer pwPage.Close()

	drv := booking.NewPlaywrightDriver(pwPage)
	if err := drv.Navigate(deps.Suite.BookingURL); err != nil {
		return fmt.Errorf("navigate to %s: %w", deps.Suite.BookingURL, err)
	}

	page := booking.NewPage(drv, deps.Logger, booking.Config{
		Timeout:       deps.Suite.Timeout,
		ScreenshotDir: deps.Artifacts.ScreenshotsDir,
	})

	if !page.WaitForPageReady(0) {
		page.CaptureOnFailure("check")
		return fmt.Errorf("booking form at %s did not become ready", deps.Suite.BookingURL)
	}

	state := page.ValidateFormState()
	fmt.Printf("booking form ready at %s\n", page.CurrentURL())
	fmt.Printf("form valid: %v\n", state.IsValid)

	fields := make([]string, 0, len(state.FieldStates))
	for name := range state.FieldStates {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		fs := state.FieldStates[name]
		fmt.Printf("  %-20s present=%v enabled=%v\n", name, fs.Present, fs.Enabled)
	}
	for _, warning := range state.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	for _, e := range state.Errors {
		fmt.Printf("error: %s\n", e)
	}
	return nil
}

package booking

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Timeout tiers. Short waits are used to probe for optional UI shapes so a
// miss fails fast; the default window is reserved for controls that are
// expected to be there.
const (
	DefaultTimeout = 30 * time.Second
	MediumTimeout  = 10 * time.Second
	ShortTimeout   = 5 * time.Second
)

// Settle delays applied after UI-triggering actions. The booking form's
// overlays animate in and bind their content late, and the driver's load
// state does not observe either.
const (
	overlaySettle    = 1 * time.Second
	dialogSettle     = 1500 * time.Millisecond
	suggestionSettle = 2 * time.Second
	stepperSettle    = 500 * time.Millisecond
)

// Config carries the per-page knobs the harness owns.
type Config struct {
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
	// ScreenshotDir receives capture output. Created on demand.
	ScreenshotDir string
}

// Page is the page object for the flight-booking form. It owns its locator
// registry and holds a non-owning reference to the driver; the harness owns
// the browser and page lifecycle. One Page serves one browser page and is
// not safe for concurrent use.
type Page struct {
	drv           Driver
	log           *zap.Logger
	loc           *locatorRegistry
	timeout       time.Duration
	screenshotDir string
}

// NewPage builds a page object over an already-navigated driver.
func NewPage(drv Driver, log *zap.Logger, cfg Config) *Page {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Page{
		drv:           drv,
		log:           log.Named("booking"),
		loc:           newLocatorRegistry(),
		timeout:       timeout,
		screenshotDir: dir,
	}
}

// TakeScreenshot captures a full-page screenshot under the configured
// directory with a timestamped name. Returns the file path, or "" if the
// capture failed (logged, never fatal).
func (p *Page) TakeScreenshot(name string) string {
	if err := os.MkdirAll(p.screenshotDir, 0o755); err != nil {
		p.log.Warn("could not create screenshot directory", zap.Error(err))
		return ""
	}
	path := filepath.Join(p.screenshotDir,
		fmt.Sprintf("%s_%s.png", name, time.Now().Format("20060102_150405")))
	if err := p.drv.Screenshot(path, true); err != nil {
		p.log.Warn("screenshot failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return path
}

// CaptureOnFailure captures a diagnostic screenshot for a failed scenario.
func (p *Page) CaptureOnFailure(testName string) string {
	return p.TakeScreenshot("failure_" + testName)
}

// WaitForPageReady waits for the booking form's key controls to be visible
// and any initial loading to finish.
func (p *Page) WaitForPageReady(timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = p.timeout
	}
	required := []LocatorSpec{
		p.loc.departureLocationField,
		p.loc.arrivalLocationField,
		p.loc.searchFlights,
	}
	for _, spec := range required {
		if _, ok := p.resolve(spec, timeout); !ok {
			p.log.Warn("booking form not ready", zap.String("missing", spec.Name))
			return false
		}
	}
	p.WaitForLoadingComplete(0)
	return true
}

// WaitForLoadingComplete waits for any loading indicator to disappear. A
// page without an indicator counts as loaded.
func (p *Page) WaitForLoadingComplete(timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = MediumTimeout
	}
	indicator, ok := p.resolve(p.loc.loadingIndicator, ShortTimeout)
	if !ok {
		return true
	}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if err := indicator.WaitVisible(stepperSettle); err != nil {
			return true
		}
		p.drv.Settle(stepperSettle)
	}
	return true
}

// ClickSearchFlights submits the search form once loading has finished.
func (p *Page) ClickSearchFlights() bool {
	p.WaitForLoadingComplete(0)
	btn, ok := p.resolve(p.loc.searchFlights, MediumTimeout)
	if !ok {
		return false
	}
	return p.SafeClick(btn, ShortTimeout)
}

// ConfirmSearchFlightsPresent verifies the submit control is reachable
// without clicking it, for flows where the click would trip bot protection.
func (p *Page) ConfirmSearchFlightsPresent() bool {
	p.WaitForLoadingComplete(0)
	_, ok := p.resolve(p.loc.searchFlights, MediumTimeout)
	return ok
}

// IsOnFlightSelectionPage reports whether navigation landed on the flight
// selection page, probing a few indicators in turn.
func (p *Page) IsOnFlightSelectionPage() bool {
	_, ok := p.resolve(p.loc.flightSelectionsPage, ShortTimeout)
	return ok
}

// CurrentTripType reads the currently selected trip type, or "Unknown" when
// neither UI shape exposes it.
func (p *Page) CurrentTripType() string {
	if toggle, ok := p.resolve(p.loc.tripTypeDropdown, ShortTimeout); ok {
		text, err := toggle.TextContent()
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	return "Unknown"
}

// ResetForm reloads the page and waits for the form to come back.
func (p *Page) ResetForm() bool {
	if !p.attempt("reload page", p.drv.Reload) {
		return false
	}
	return p.WaitForPageReady(0)
}

// CurrentURL returns the page URL, "" on driver failure.
func (p *Page) CurrentURL() string {
	return p.drv.URL()
}

// PageTitle returns the page title, "" on driver failure.
func (p *Page) PageTitle() string {
	title, err := p.drv.Title()
	if err != nil {
		return ""
	}
	return title
}

package config

import (
	"fmt"
	"strconv"
	"time"
)

// Default booking page for the suite. Overridable so the suite can point at
// a staging mirror.
const defaultBookingURL = "https://www.qantas.com/hk/en/book-a-trip/flights.html#make-a-flight-booking"

// SuiteConfig holds everything the test harness needs to run the suite.
type SuiteConfig struct {
	BookingURL   string
	Headless     bool
	SlowMo       time.Duration
	Timeout      time.Duration
	TestDataPath string
}

// LoadSuiteConfig loads suite configuration from environment variables.
// Every field has a default; nothing is required.
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	cfg := &SuiteConfig{
		BookingURL:   defaultBookingURL,
		Headless:     true,
		Timeout:      30 * time.Second,
		TestDataPath: "test_data.json",
	}

	if url := getenv("BOOKING_URL"); url != "" {
		cfg.BookingURL = url
	}
	if path := getenv("TEST_DATA_PATH"); path != "" {
		cfg.TestDataPath = path
	}
	// HEADLESS=false opens a visible browser for debugging.
	if headless := getenv("HEADLESS"); headless != "" {
		v, err := strconv.ParseBool(headless)
		if err != nil {
			return nil, fmt.Errorf("HEADLESS must be a boolean, got %q", headless)
		}
		cfg.Headless = v
	}
	if slowMo := getenv("SLOW_MO_MS"); slowMo != "" {
		ms, err := strconv.Atoi(slowMo)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("SLOW_MO_MS must be a non-negative integer, got %q", slowMo)
		}
		cfg.SlowMo = time.Duration(ms) * time.Millisecond
	}
	if timeout := getenv("TIMEOUT_MS"); timeout != "" {
		ms, err := strconv.Atoi(timeout)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("TIMEOUT_MS must be a positive integer, got %q", timeout)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

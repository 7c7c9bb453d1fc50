package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectOneWayViaLabel(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	label := d.visible(loc.tripTypeOneWay)
	page := newTestPage(d, t.TempDir())

	assert.True(t, page.SelectOneWay())
	assert.Equal(t, 1, label.clicks)
}

func TestSelectRoundTripViaDropdown(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	toggle := d.visible(loc.tripTypeDropdown)
	option := d.visibleAt("text='Return'")
	// The label shape also exists; the dropdown shape must win the probe.
	label := d.visible(loc.tripTypeRoundTrip)
	page := newTestPage(d, t.TempDir())

	assert.True(t, page.SelectRoundTrip())
	assert.Equal(t, 1, toggle.clicks)
	assert.Equal(t, 1, option.clicks)
	assert.Zero(t, label.clicks)
}

func TestSelectOneWayNeitherShapePresent(t *testing.T) {
	page := newTestPage(newFakeDriver(), t.TempDir())
	assert.False(t, page.SelectOneWay())
}

func TestSelectOneWayDropdownMissingOption(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.visible(loc.tripTypeDropdown)
	// Toggle opens but the option list never renders the text.
	page := newTestPage(d, t.TempDir())

	assert.False(t, page.SelectOneWay())
}

func TestCurrentTripType(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	page := newTestPage(d, t.TempDir())

	assert.Equal(t, "Unknown", page.CurrentTripType())

	d.visible(loc.tripTypeDropdown).text = "One way"
	assert.Equal(t, "One way", page.CurrentTripType())
}

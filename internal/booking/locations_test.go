package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOriginViaSuggestion(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.visible(loc.departureLocationField)
	input := d.visible(loc.locationSearchInput)
	suggestion := d.visible(loc.locationSuggestion)
	page := newTestPage(d, t.TempDir())

	require.True(t, page.SelectOrigin("Hong Kong"))
	assert.Equal(t, []string{"Hong Kong"}, input.fills)
	assert.Equal(t, 1, suggestion.clicks)
	assert.Empty(t, d.pressed, "no keyboard fallback needed")
}

func TestSelectDestinationEnterFallback(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.visible(loc.arrivalLocationField)
	d.visible(loc.locationSearchInput)
	// No suggestion element ever appears.
	page := newTestPage(d, t.TempDir())

	require.True(t, page.SelectDestination("Tokyo"))
	assert.Equal(t, []string{"Enter"}, d.pressed)
}

func TestSelectOriginEscapesOnFillFailure(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.visible(loc.departureLocationField)
	d.visible(loc.locationSearchInput).fillErr = errors.New("input detached")
	page := newTestPage(d, t.TempDir())

	assert.False(t, page.SelectOrigin("Hong Kong"))
	assert.Equal(t, []string{"Escape"}, d.pressed, "stuck overlay must be escaped")
}

func TestSelectOriginFieldAbsent(t *testing.T) {
	page := newTestPage(newFakeDriver(), t.TempDir())
	assert.False(t, page.SelectOrigin("Hong Kong"))
}

func TestSelectOriginFieldFallbackCandidate(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	// Only the literal-text shape of the field exists, not the placeholder
	// class shape.
	opener := d.visibleAt(loc.departureLocationField.Candidates[1])
	d.visible(loc.locationSearchInput)
	d.visible(loc.locationSuggestion)
	page := newTestPage(d, t.TempDir())

	require.True(t, page.SelectOrigin("Hong Kong"))
	assert.Equal(t, 1, opener.clicks)
}

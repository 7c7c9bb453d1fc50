package booking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGetValidationMessagesDeduplicates(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.multi[loc.validationMessage.Candidates[0]] = []*fakeElement{
		{visible: true, text: "Only 1 infant per adult"},
		{visible: true, text: "Only 1 infant per adult"},
		{visible: true, text: "  "},
		{visible: true, text: "Select a return date"},
	}
	// The infant-specific region repeats the generic message.
	d.visibleAt(loc.infantValidationMessage.Candidates[0]).text = "Only 1 infant per adult"
	page := newTestPage(d, t.TempDir())

	got := page.GetValidationMessages()
	want := []string{"Only 1 infant per adult", "Select a return date"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestGetValidationMessagesIdempotent(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.multi[loc.validationMessage.Candidates[0]] = []*fakeElement{
		{visible: true, text: "Select a return date"},
	}
	page := newTestPage(d, t.TempDir())

	first := page.GetValidationMessages()
	second := page.GetValidationMessages()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeat query with no UI change differs (-first +second):\n%s", diff)
	}
}

func TestGetErrorMessageJoinsValidationMessages(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.multi[loc.validationMessage.Candidates[0]] = []*fakeElement{
		{visible: true, text: "one"},
		{visible: true, text: "two"},
	}
	page := newTestPage(d, t.TempDir())

	assert.Equal(t, "one; two", page.GetErrorMessage())
}

func TestGetErrorMessageFallsBackToErrorRegion(t *testing.T) {
	d := newFakeDriver()
	loc := newLocatorRegistry()
	d.visible(loc.errorRegion).text = "Something went wrong"
	page := newTestPage(d, t.TempDir())

	assert.Equal(t, "Something went wrong", page.GetErrorMessage())
}

func TestGetErrorMessageEmptyWhenQuiet(t *testing.T) {
	d := newFakeDriver()
	page := newTestPage(d, t.TempDir())

	assert.Empty(t, page.GetErrorMessage())
}

func TestGetInfantLimitErrorMessageKeywords(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "matches infant keyword",
			messages: []string{"Only 1 infant can travel per adult"},
			want:     "Only 1 infant can travel per adult",
		},
		{
			name:     "matches booked online wording",
			messages: []string{"This fare cannot be booked online"},
			want:     "This fare cannot be booked online",
		},
		{
			name:     "skips unrelated messages",
			messages: []string{"Select a departure airport"},
			want:     "",
		},
		{
			name: "first keyword match wins",
			messages: []string{
				"Select a departure airport",
				"One infant for every adult",
			},
			want: "One infant for every adult",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFakeDriver()
			loc := newLocatorRegistry()
			var els []*fakeElement
			for _, m := range tt.messages {
				els = append(els, &fakeElement{visible: true, text: m})
			}
			d.multi[loc.validationMessage.Candidates[0]] = els
			page := newTestPage(d, t.TempDir())

			assert.Equal(t, tt.want, page.GetInfantLimitErrorMessage())
		})
	}
}

func TestValidateFormStateAllPresent(t *testing.T) {
	d := newFakeDriver()
	wireHappyForm(d, "15 Sept 2025", "")
	page := newTestPage(d, t.TempDir())

	state := page.ValidateFormState()
	assert.True(t, state.IsValid)
	assert.Empty(t, state.Errors)
	assert.Len(t, state.FieldStates, 5)
	for name, fs := range state.FieldStates {
		assert.True(t, fs.Present, "%s should be present", name)
		assert.True(t, fs.Enabled, "%s should be enabled", name)
	}
}

func TestValidateFormStateMissingControl(t *testing.T) {
	d := newFakeDriver()
	loc := wireHappyForm(d, "15 Sept 2025", "")
	delete(d.elements, loc.searchFlights.Candidates[0])
	page := newTestPage(d, t.TempDir())

	state := page.ValidateFormState()
	assert.False(t, state.IsValid)
	assert.Contains(t, state.Errors, "search_button not found")
	assert.False(t, state.FieldStates["search_button"].Present)
}

func TestValidateFormStateDisabledSearchWarns(t *testing.T) {
	d := newFakeDriver()
	loc := wireHappyForm(d, "15 Sept 2025", "")
	d.elements[loc.searchFlights.Candidates[0]].enabled = false
	page := newTestPage(d, t.TempDir())

	state := page.ValidateFormState()
	assert.True(t, state.IsValid)
	assert.Contains(t, state.Warnings, "search flights button is disabled")
}

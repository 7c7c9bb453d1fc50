package booking

import (
	"strings"

	"go.uber.org/zap"
)

// infantLimitKeywords classify a validation message as infant-limit related.
// The live system's wording is not contractually fixed, so this is a keyword
// heuristic rather than an exact match.
var infantLimitKeywords = []string{"infant", "adult", "booked", "online", "every"}

// FieldState is a presence/enabled snapshot of one required form control.
type FieldState struct {
	Present bool
	Enabled bool
}

// FormValidationState is a point-in-time snapshot of the booking form:
// which required controls are reachable and what the page currently
// complains about. It is recomputed on each call, never tracked.
type FormValidationState struct {
	IsValid     bool
	Errors      []string
	Warnings    []string
	FieldStates map[string]FieldState
}

// GetValidationMessages scrapes the generic validation region plus the
// adult- and infant-specific regions, deduplicating by exact text. The
// result is recomputed on every call.
func (p *Page) GetValidationMessages() []string {
	var messages []string
	seen := make(map[string]bool)
	add := func(text string) {
		text = strings.TrimSpace(text)
		if text != "" && !seen[text] {
			seen[text] = true
			messages = append(messages, text)
		}
	}

	elements, err := p.drv.FindAll(p.loc.validationMessage.Candidates[0])
	if err != nil {
		p.log.Debug("validation region scrape failed", zap.Error(err))
	}
	for _, el := range elements {
		if text, err := el.TextContent(); err == nil {
			add(text)
		}
	}

	for _, spec := range []LocatorSpec{p.loc.adultValidationMessage, p.loc.infantValidationMessage} {
		if el, ok := p.resolve(spec, ShortTimeout); ok {
			if text, err := el.TextContent(); err == nil {
				add(text)
			}
		}
	}
	return messages
}

// GetErrorMessage joins current validation messages with "; ", falling back
// to the generic error region. Empty string when the page shows nothing.
func (p *Page) GetErrorMessage() string {
	if messages := p.GetValidationMessages(); len(messages) > 0 {
		return strings.Join(messages, "; ")
	}
	if el, ok := p.resolve(p.loc.errorRegion, ShortTimeout); ok {
		return p.elementText(el, ShortTimeout)
	}
	return ""
}

// GetInfantLimitErrorMessage returns the first validation message that looks
// infant-limit related, or "" when none matches the keyword set.
func (p *Page) GetInfantLimitErrorMessage() string {
	for _, message := range p.GetValidationMessages() {
		lower := strings.ToLower(message)
		for _, keyword := range infantLimitKeywords {
			if strings.Contains(lower, keyword) {
				return message
			}
		}
	}
	return ""
}

// ValidateFormState probes the five required controls and merges in current
// validation messages.
func (p *Page) ValidateFormState() FormValidationState {
	state := FormValidationState{
		IsValid:     true,
		FieldStates: make(map[string]FieldState),
	}

	required := map[string]LocatorSpec{
		"departure_selector": p.loc.departureLocationField,
		"arrival_selector":   p.loc.arrivalLocationField,
		"travel_dates":       p.loc.travelDatesField,
		"passenger_selector": p.loc.passengerField,
		"search_button":      p.loc.searchFlights,
	}

	for name, spec := range required {
		el, present := p.resolve(spec, ShortTimeout)
		fs := FieldState{Present: present}
		if present {
			if enabled, err := el.IsEnabled(); err == nil {
				fs.Enabled = enabled
			}
		}
		state.FieldStates[name] = fs
		if !present {
			state.Errors = append(state.Errors, name+" not found")
			state.IsValid = false
		}
	}

	if messages := p.GetValidationMessages(); len(messages) > 0 {
		state.Errors = append(state.Errors, messages...)
		state.IsValid = false
	}

	if search, ok := state.FieldStates["search_button"]; ok && search.Present && !search.Enabled {
		state.Warnings = append(state.Warnings, "search flights button is disabled")
	}
	return state
}

package booking

import "go.uber.org/zap"

// Location selection drives a search overlay: click the field placeholder,
// type into whichever free-text input the overlay exposes, and accept the
// first suggestion. The suggestion list's content is never inspected, only
// its position; when no suggestion element can be found at all, Enter
// accepts the field as typed.

// SelectOrigin fills the departure location through the search overlay.
func (p *Page) SelectOrigin(origin string) bool {
	return p.selectLocation(p.loc.departureLocationField, origin)
}

// SelectDestination fills the arrival location through the search overlay.
func (p *Page) SelectDestination(destination string) bool {
	return p.selectLocation(p.loc.arrivalLocationField, destination)
}

func (p *Page) selectLocation(field LocatorSpec, value string) bool {
	opener, ok := p.resolve(field, ShortTimeout)
	if !ok || !p.SafeClick(opener, ShortTimeout) {
		return false
	}
	p.drv.Settle(overlaySettle)

	input, ok := p.resolve(p.loc.locationSearchInput, ShortTimeout)
	if !ok || !p.SafeFill(input, value, ShortTimeout) {
		p.escapeOverlay(field.Name)
		return false
	}
	p.drv.Settle(suggestionSettle)

	if suggestion, ok := p.resolve(p.loc.locationSuggestion, ShortTimeout); ok {
		if p.SafeClick(suggestion, ShortTimeout) {
			return true
		}
	}

	// No clickable suggestion surfaced; accept the typed value directly.
	if !p.attempt("press enter", func() error { return p.drv.Press("Enter") }) {
		p.escapeOverlay(field.Name)
		return false
	}
	return true
}

// escapeOverlay closes a stuck search overlay so later steps start from the
// base form. Best effort only.
func (p *Page) escapeOverlay(target string) {
	if err := p.drv.Press("Escape"); err != nil {
		p.log.Debug("escape keypress failed", zap.String("target", target), zap.Error(err))
	}
}

package booking

import (
	"fmt"

	"go.uber.org/zap"
)

// The trip-type control ships in two shapes depending on the page variant:
// a dropdown toggle that reveals text options, and a pair of plain labels.
// Both selectors probe for the dropdown with a short wait so the label
// fallback is reached quickly when the toggle is absent.

// SelectOneWay switches the form to a one-way trip.
func (p *Page) SelectOneWay() bool {
	return p.selectTripType("One way", p.loc.tripTypeOneWay)
}

// SelectRoundTrip switches the form to a round trip.
func (p *Page) SelectRoundTrip() bool {
	return p.selectTripType("Return", p.loc.tripTypeRoundTrip)
}

func (p *Page) selectTripType(optionText string, label LocatorSpec) bool {
	if toggle, ok := p.resolve(p.loc.tripTypeDropdown, ShortTimeout); ok {
		if !p.SafeClick(toggle, ShortTimeout) {
			p.log.Warn("trip type dropdown present but not clickable",
				zap.String("option", optionText))
			return false
		}
		option := p.drv.Find(fmt.Sprintf("text='%s'", optionText))
		return p.SafeClick(option, ShortTimeout)
	}

	el, ok := p.resolve(label, ShortTimeout)
	if !ok {
		return false
	}
	return p.SafeClick(el, ShortTimeout)
}

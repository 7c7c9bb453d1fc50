package booking

import (
	"strconv"

	"go.uber.org/zap"
)

// The passenger overlay exposes plus/minus steppers per passenger type. The
// form always opens with one adult, so adult adjustment is delta-based from
// that baseline. Every stepper control is resolved through a two-tier
// fallback: the structural rc-input-number handler first, the ARIA label
// second.

// SelectPassengers opens the passenger stepper and adjusts the adult and
// infant counts. A stepper button that cannot be resolved stops further
// stepping for that counter without failing the whole operation.
func (p *Page) SelectPassengers(adults, infants int) bool {
	opener, ok := p.resolve(p.loc.passengerField, ShortTimeout)
	if !ok || !p.SafeClick(opener, ShortTimeout) {
		return false
	}
	p.drv.Settle(dialogSettle)

	delta := adults - 1
	stepper := p.loc.adultPlus
	if delta < 0 {
		stepper = p.loc.adultMinus
		delta = -delta
	}
	done := p.step(stepper, delta)
	if done < delta {
		p.log.Warn("adult stepping stopped early",
			zap.Int("wanted", delta), zap.Int("completed", done))
	}

	done = p.step(p.loc.infantPlus, infants)
	if done < infants {
		p.log.Warn("infant stepping stopped early",
			zap.Int("wanted", infants), zap.Int("completed", done))
	}
	return true
}

// ConfirmPassengerSelection clicks the shared dialog confirmation control.
func (p *Page) ConfirmPassengerSelection() bool {
	confirm, ok := p.resolve(p.loc.dialogConfirm, MediumTimeout)
	if !ok {
		return false
	}
	return p.SafeClick(confirm, ShortTimeout)
}

// step clicks a stepper control count times with a settle wait between
// clicks, returning how many clicks landed.
func (p *Page) step(spec LocatorSpec, count int) int {
	for i := 0; i < count; i++ {
		btn, ok := p.resolve(spec, ShortTimeout)
		if !ok || !p.SafeClick(btn, ShortTimeout) {
			return i
		}
		p.drv.Settle(stepperSettle)
	}
	return count
}

// ClickInfantPlus issues a single infant increment.
func (p *Page) ClickInfantPlus() bool {
	btn, ok := p.resolve(p.loc.infantPlus, ShortTimeout)
	if !ok {
		return false
	}
	return p.SafeClick(btn, ShortTimeout)
}

// IsInfantPlusDisabled reports whether the infant increment is disabled or
// missing. An unresolvable button counts as disabled.
func (p *Page) IsInfantPlusDisabled() bool {
	btn, ok := p.resolve(p.loc.infantPlus, ShortTimeout)
	if !ok {
		return true
	}
	enabled, err := btn.IsEnabled()
	if err != nil {
		p.log.Debug("enabled check failed", zap.Error(err))
		return true
	}
	return !enabled
}

// InfantCount reads the current infant count, preferring the live ARIA
// value over the raw input value. Zero when unreadable.
func (p *Page) InfantCount() int {
	input, ok := p.resolve(p.loc.infantInput, ShortTimeout)
	if !ok {
		return 0
	}
	value := p.elementAttribute(input, "aria-valuenow", ShortTimeout)
	if value == "" {
		raw, err := input.InputValue()
		if err != nil {
			return 0
		}
		value = raw
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// AdultCount reads the current adult count the same way.
func (p *Page) AdultCount() int {
	input, ok := p.resolve(p.loc.adultInput, ShortTimeout)
	if !ok {
		return 0
	}
	value := p.elementAttribute(input, "aria-valuenow", ShortTimeout)
	if value == "" {
		raw, err := input.InputValue()
		if err != nil {
			return 0
		}
		value = raw
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// TestAdultMinusValidation drives the adult counter below its minimum and
// harvests whatever validation text the live system produces. It asserts
// nothing locally; the target system owns the rule.
func (p *Page) TestAdultMinusValidation() []string {
	opener, ok := p.resolve(p.loc.passengerField, ShortTimeout)
	if !ok || !p.SafeClick(opener, ShortTimeout) {
		return nil
	}
	p.drv.Settle(overlaySettle)

	if btn, ok := p.resolve(p.loc.adultMinus, ShortTimeout); ok {
		if p.SafeClick(btn, ShortTimeout) {
			p.drv.Settle(overlaySettle)
		}
	}
	return p.GetValidationMessages()
}

// TestInfantLimitValidation increments infants up to the cap implied by the
// adult count, then once past it, and returns the harvested validation
// messages. The per-adult ratio is a property of the system under test, not
// of this code; adults parameterizes how many increments are expected to be
// accepted before the blocked one.
func (p *Page) TestInfantLimitValidation(adults int) []string {
	opener, ok := p.resolve(p.loc.passengerField, ShortTimeout)
	if !ok || !p.SafeClick(opener, ShortTimeout) {
		return nil
	}
	p.drv.Settle(overlaySettle)

	for i := 0; i < adults; i++ {
		p.ClickInfantPlus()
	}
	// One more than the cap; the system should block it and complain.
	p.ClickInfantPlus()
	p.drv.Settle(overlaySettle)

	return p.GetValidationMessages()
}

package booking

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ariaLiveLabel is the live-region span inside a calendar day cell that
// announces its selection state.
const ariaLiveLabel = "span[aria-live='polite']"

// SelectDates opens the calendar, picks the departure day and, when
// returnDate is non-empty, the return day, then confirms the dialog.
//
// Failure policy is asymmetric on purpose: an unresolvable departure day
// aborts before the confirmation click, while a missed return day is only
// logged and the dialog still confirmed, so a one-way completion is never
// blocked by an optional return-date miss.
func (p *Page) SelectDates(departureDate, returnDate string) bool {
	opener, ok := p.resolve(p.loc.travelDatesField, ShortTimeout)
	if !ok || !p.SafeClick(opener, ShortTimeout) {
		return false
	}
	p.drv.Settle(dialogSettle)

	if !p.clickDepartureDay(departureDate) {
		p.log.Warn("could not resolve departure date", zap.String("date", departureDate))
		p.CloseDatePicker()
		return false
	}

	if returnDate != "" && !p.clickReturnDay(returnDate) {
		p.log.Warn("could not select return date, confirming departure only",
			zap.String("date", returnDate))
	}

	confirm, ok := p.resolve(p.loc.dialogConfirm, ShortTimeout)
	if !ok {
		return false
	}
	return p.SafeClick(confirm, ShortTimeout)
}

// SelectDepartureDate picks only the departure day, for one-way trips.
func (p *Page) SelectDepartureDate(date string) bool {
	return p.SelectDates(date, "")
}

func (p *Page) clickDepartureDay(date string) bool {
	for _, selector := range dayCellCandidates(date) {
		cell := p.drv.Find(selector)
		if p.SafeClick(cell, ShortTimeout) {
			p.drv.Settle(overlaySettle)
			return true
		}
	}
	return false
}

// clickReturnDay mirrors clickDepartureDay but checks the cell's live-region
// label first: in layouts where departure and return land on the same cell,
// a cell already announced as selected for return must not be clicked again.
func (p *Page) clickReturnDay(date string) bool {
	for _, selector := range dayCellCandidates(date) {
		cell := p.drv.Find(selector)
		if !p.WaitVisible(cell, ShortTimeout) {
			continue
		}
		label := p.elementText(cell.Find(ariaLiveLabel), ShortTimeout)
		if strings.Contains(label, "Selected for departure") ||
			!strings.Contains(label, "Selected for return") {
			if p.SafeClick(cell, ShortTimeout) {
				return true
			}
		}
	}
	return false
}

// CloseDatePicker dismisses the calendar via its close glyph, falling back
// to an Escape keypress. It always reaches a terminal boolean.
func (p *Page) CloseDatePicker() bool {
	if closeBtn, ok := p.resolve(p.loc.datePickerClose, ShortTimeout); ok {
		if p.SafeClick(closeBtn, ShortTimeout) {
			return true
		}
	}
	return p.attempt("press escape", func() error { return p.drv.Press("Escape") })
}

// dayCellCandidates builds the ordered locator templates for one calendar
// day, from most to least specific: a data-testid slug of the full date, an
// ISO-date testid match, then two text-content shapes of the day cell.
func dayCellCandidates(date string) []string {
	day := extractDay(date)
	candidates := make([]string, 0, 4)

	slug := strings.ToLower(strings.ReplaceAll(date, " ", "-"))
	candidates = append(candidates,
		fmt.Sprintf("//button[@data-testid and contains(@data-testid,'%s')]", slug))

	if iso := isoDate(date); iso != "" {
		candidates = append(candidates,
			fmt.Sprintf("//button[contains(@data-testid,'%s')]", iso))
	}

	candidates = append(candidates,
		fmt.Sprintf("//div[contains(@class,'runway-calendar__date') and text()='%s']/parent::button", day),
		fmt.Sprintf("//button[contains(@class,'runway-calendar__day')]//div[text()='%s']/parent::*", day),
	)
	return candidates
}

// extractDay pulls the bare day number out of the supported date formats:
// "15 Sept 2025", "2025-09-15", or already just "15".
func extractDay(date string) string {
	switch {
	case strings.Contains(date, " "):
		return strings.Fields(date)[0]
	case strings.Contains(date, "-"):
		parts := strings.Split(date, "-")
		return strings.TrimLeft(parts[len(parts)-1], "0")
	default:
		return date
	}
}

// isoDate normalizes a supported date string to YYYY-MM-DD, or "" when the
// input carries no month/year information.
func isoDate(date string) string {
	if strings.Count(date, "-") == 2 {
		return date
	}
	if !strings.Contains(date, " ") {
		return ""
	}
	normalized := strings.Replace(date, "Sept", "Sep", 1)
	for _, layout := range []string{"2 Jan 2006", "2 January 2006", "Jan 2 2006"} {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

package booking

import (
	"errors"
	"time"
)

// fakeElement is an in-memory Element for driving the primitives without a
// browser.
type fakeElement struct {
	visible    bool
	enabled    bool
	text       string
	attrs      map[string]string
	input      string
	clickErr   error
	clickPanic bool
	fillErr    error
	children   map[string]*fakeElement

	clicks int
	fills  []string
}

var errNotVisible = errors.New("element not visible")

func (e *fakeElement) WaitVisible(time.Duration) error {
	if e.visible {
		return nil
	}
	return errNotVisible
}

func (e *fakeElement) Click() error {
	if e.clickPanic {
		panic("click on detached element")
	}
	if e.clickErr != nil {
		return e.clickErr
	}
	e.clicks++
	return nil
}

func (e *fakeElement) Fill(text string) error {
	if e.fillErr != nil {
		return e.fillErr
	}
	e.fills = append(e.fills, text)
	return nil
}

func (e *fakeElement) Clear() error { return nil }

func (e *fakeElement) TextContent() (string, error) { return e.text, nil }

func (e *fakeElement) GetAttribute(name string) (string, error) {
	return e.attrs[name], nil
}

func (e *fakeElement) InputValue() (string, error) { return e.input, nil }

func (e *fakeElement) IsEnabled() (bool, error) { return e.enabled, nil }

func (e *fakeElement) Find(selector string) Element {
	if child, ok := e.children[selector]; ok {
		return child
	}
	return &fakeElement{}
}

// fakeDriver maps selector strings to fake elements. Unregistered selectors
// resolve to a never-visible element, which is exactly how an absent control
// behaves through the real driver.
type fakeDriver struct {
	elements map[string]*fakeElement
	multi    map[string][]*fakeElement
	pressed  []string
	shots    []string
	shotErr  error
	url      string
	title    string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		elements: make(map[string]*fakeElement),
		multi:    make(map[string][]*fakeElement),
		url:      "https://example.test/booking",
	}
}

func (d *fakeDriver) Navigate(string) error { return nil }

func (d *fakeDriver) Find(selector string) Element {
	if el, ok := d.elements[selector]; ok {
		return el
	}
	return &fakeElement{}
}

func (d *fakeDriver) FindAll(selector string) ([]Element, error) {
	els := d.multi[selector]
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}

func (d *fakeDriver) Press(key string) error {
	d.pressed = append(d.pressed, key)
	return nil
}

func (d *fakeDriver) Screenshot(path string, fullPage bool) error {
	if d.shotErr != nil {
		return d.shotErr
	}
	d.shots = append(d.shots, path)
	return nil
}

func (d *fakeDriver) URL() string { return d.url }

func (d *fakeDriver) Title() (string, error) { return d.title, nil }

func (d *fakeDriver) Reload() error { return nil }

func (d *fakeDriver) WaitForLoad(time.Duration) error { return nil }

func (d *fakeDriver) Settle(time.Duration) {}

// visible registers a visible, enabled element under the spec's first
// candidate selector and returns it.
func (d *fakeDriver) visible(spec LocatorSpec) *fakeElement {
	el := &fakeElement{visible: true, enabled: true}
	d.elements[spec.Candidates[0]] = el
	return el
}

// visibleAt registers a visible, enabled element under an explicit selector.
func (d *fakeDriver) visibleAt(selector string) *fakeElement {
	el := &fakeElement{visible: true, enabled: true}
	d.elements[selector] = el
	return el
}

// newTestPage builds a page object over d with a nop logger and a throwaway
// screenshot directory.
func newTestPage(d *fakeDriver, dir string) *Page {
	return NewPage(d, nil, Config{Timeout: 50 * time.Millisecond, ScreenshotDir: dir})
}

// wireHappyForm registers every control a fully successful booking flow
// touches, for the given departure/return dates.
func wireHappyForm(d *fakeDriver, departure, ret string) *locatorRegistry {
	loc := newLocatorRegistry()

	d.visible(loc.tripTypeOneWay)
	d.visible(loc.tripTypeRoundTrip)
	d.visible(loc.departureLocationField)
	d.visible(loc.arrivalLocationField)
	d.visible(loc.locationSearchInput)
	d.visible(loc.locationSuggestion)
	d.visible(loc.travelDatesField)
	d.visible(loc.dialogConfirm)
	d.visible(loc.passengerField)
	d.visible(loc.adultPlus)
	d.visible(loc.adultMinus)
	d.visible(loc.infantPlus)
	d.visible(loc.searchFlights)

	d.visibleAt(dayCellCandidates(departure)[0])
	if ret != "" {
		d.visibleAt(dayCellCandidates(ret)[0])
	}
	return loc
}

package booking

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// playwrightDriver adapts a playwright.Page to the Driver interface.
type playwrightDriver struct {
	page playwright.Page
}

// NewPlaywrightDriver wraps an existing Playwright page. The caller retains
// ownership of the page and the browser behind it.
func NewPlaywrightDriver(page playwright.Page) Driver {
	return &playwrightDriver{page: page}
}

func (d *playwrightDriver) Navigate(url string) error {
	_, err := d.page.Goto(url)
	return err
}

func (d *playwrightDriver) Find(selector string) Element {
	return &playwrightElement{locator: d.page.Locator(selector).First()}
}

func (d *playwrightDriver) FindAll(selector string) ([]Element, error) {
	locators, err := d.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	elements := make([]Element, len(locators))
	for i, l := range locators {
		elements[i] = &playwrightElement{locator: l}
	}
	return elements, nil
}

func (d *playwrightDriver) Press(key string) error {
	return d.page.Keyboard().Press(key)
}

func (d *playwrightDriver) Screenshot(path string, fullPage bool) error {
	_, err := d.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(fullPage),
	})
	return err
}

func (d *playwrightDriver) URL() string {
	return d.page.URL()
}

func (d *playwrightDriver) Title() (string, error) {
	return d.page.Title()
}

func (d *playwrightDriver) Reload() error {
	_, err := d.page.Reload()
	return err
}

func (d *playwrightDriver) WaitForLoad(timeout time.Duration) error {
	return d.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (d *playwrightDriver) Settle(dur time.Duration) {
	time.Sleep(dur)
}

type playwrightElement struct {
	locator playwright.Locator
}

func (e *playwrightElement) WaitVisible(timeout time.Duration) error {
	return e.locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (e *playwrightElement) Click() error {
	return e.locator.Click()
}

func (e *playwrightElement) Fill(text string) error {
	return e.locator.Fill(text)
}

func (e *playwrightElement) Clear() error {
	return e.locator.Clear()
}

func (e *playwrightElement) TextContent() (string, error) {
	return e.locator.TextContent()
}

func (e *playwrightElement) GetAttribute(name string) (string, error) {
	return e.locator.GetAttribute(name)
}

func (e *playwrightElement) InputValue() (string, error) {
	return e.locator.InputValue()
}

func (e *playwrightElement) IsEnabled() (bool, error) {
	return e.locator.IsEnabled()
}

func (e *playwrightElement) Find(selector string) Element {
	return &playwrightElement{locator: e.locator.Locator(selector).First()}
}

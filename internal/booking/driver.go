package booking

import "time"

// Element is a handle to one located UI element. Implementations are lazy:
// construction never touches the DOM, so a handle for an element that does
// not exist is valid until an operation is attempted on it.
type Element interface {
	// WaitVisible blocks until the element is visible or the timeout expires.
	WaitVisible(timeout time.Duration) error
	Click() error
	Fill(text string) error
	Clear() error
	TextContent() (string, error)
	GetAttribute(name string) (string, error)
	InputValue() (string, error)
	IsEnabled() (bool, error)
	// Find locates a descendant of this element.
	Find(selector string) Element
}

// Driver is the slice of browser capability the page object consumes. The
// production implementation wraps a Playwright page; tests substitute an
// in-memory fake.
type Driver interface {
	Navigate(url string) error
	// Find returns a handle to the first element matching selector.
	Find(selector string) Element
	// FindAll resolves every element currently matching selector.
	FindAll(selector string) ([]Element, error)
	Press(key string) error
	Screenshot(path string, fullPage bool) error
	URL() string
	Title() (string, error)
	Reload() error
	// WaitForLoad waits for pending page activity to quiesce.
	WaitForLoad(timeout time.Duration) error
	// Settle pauses for a fixed duration after a UI-triggering action, giving
	// dialog animations and late-binding content time to attach.
	Settle(d time.Duration)
}

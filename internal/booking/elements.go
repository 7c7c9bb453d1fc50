package booking

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Every browser operation can fail for reasons that are not test failures:
// animation timing, late-binding elements, network latency. The helpers here
// convert all of that into booleans plus a logged diagnostic, so call sites
// can chain fallback strategies without error plumbing.

// attempt runs fn and converts any error into false with a diagnostic log.
func (p *Page) attempt(op string, fn func() error) bool {
	if err := fn(); err != nil {
		p.log.Debug("operation failed", zap.String("op", op), zap.Error(err))
		return false
	}
	return true
}

// WaitVisible reports whether el becomes visible within timeout. Zero
// timeout means the page default.
func (p *Page) WaitVisible(el Element, timeout time.Duration) bool {
	if el == nil {
		return false
	}
	if timeout <= 0 {
		timeout = p.timeout
	}
	return p.attempt("wait visible", func() error {
		return el.WaitVisible(timeout)
	})
}

// SafeClick waits for el to be visible and clicks it. True only if both
// steps succeed.
func (p *Page) SafeClick(el Element, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = ShortTimeout
	}
	if !p.WaitVisible(el, timeout) {
		return false
	}
	return p.attempt("click", el.Click)
}

// SafeFill waits for el, clears any existing content, and writes text.
func (p *Page) SafeFill(el Element, text string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = ShortTimeout
	}
	if !p.WaitVisible(el, timeout) {
		return false
	}
	if !p.attempt("clear", el.Clear) {
		return false
	}
	return p.attempt("fill", func() error {
		return el.Fill(text)
	})
}

// elementText reads trimmed text content, "" when the element is absent or
// unreadable.
func (p *Page) elementText(el Element, timeout time.Duration) string {
	if !p.WaitVisible(el, timeout) {
		return ""
	}
	text, err := el.TextContent()
	if err != nil {
		p.log.Debug("text content failed", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(text)
}

// elementAttribute reads an attribute value, "" when absent.
func (p *Page) elementAttribute(el Element, name string, timeout time.Duration) string {
	if !p.WaitVisible(el, timeout) {
		return ""
	}
	value, err := el.GetAttribute(name)
	if err != nil {
		p.log.Debug("attribute read failed", zap.String("attr", name), zap.Error(err))
		return ""
	}
	return value
}

// Package browser abstracts the browser automation capability behind a
// narrow Driver interface so that the scrape logic can be run and tested
// without a real browser.
package browser

import (
	"context"
	"fmt"
	"time"
)

// A Driver controls one page of a browser. All bounded waits return an
// error wrapping context.DeadlineExceeded on expiry.
type Driver interface {
	// Navigate opens the given url and waits at most timeout for the
	// navigation to settle.
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	// WaitVisible waits until at least one element matches the selector.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	// Elements returns all currently rendered elements matching the
	// selector, in document order. A selector without matches yields an
	// empty slice, not an error.
	Elements(ctx context.Context, selector string) ([]Element, error)
	// FindText searches the page for an element whose visible text matches
	// the given case-insensitive regex pattern and returns that text.
	FindText(ctx context.Context, pattern string) (string, bool, error)
	// ScrollToBottom triggers a scroll to the bottom of the page.
	ScrollToBottom(ctx context.Context) error
	// PageHeight returns the total scrollable height of the page.
	PageHeight(ctx context.Context) (int64, error)
	// Close releases the underlying browser. It is safe to call more
	// than once.
	Close()
}

// An Element is one rendered DOM element, scoping further lookups to its
// subtree.
type Element interface {
	// Text waits at most timeout for a child matching the selector and
	// returns its untrimmed text content.
	Text(ctx context.Context, selector string, timeout time.Duration) (string, error)
}

// DriverConfig defines the necessary parameters to make a new driver.
type DriverConfig struct {
	Type      string     `yaml:"type,omitempty" env:"BROWSER_TYPE"`
	Headless  bool       `yaml:"headless,omitempty" env:"BROWSER_HEADLESS"`
	UserAgent string     `yaml:"user_agent,omitempty" env:"BROWSER_USER_AGENT"`
	MockPages []MockPage `yaml:"mock_pages,omitempty"`
}

const (
	ChromeDriverType = "chrome"
	MockDriverType   = "mock"
)

// NewDriver returns a driver of the configured type. An empty type means
// chrome.
func NewDriver(dc *DriverConfig) (Driver, error) {
	switch dc.Type {
	case "", ChromeDriverType:
		return NewChromeDriver(dc), nil
	case MockDriverType:
		return NewMockDriver(dc), nil
	default:
		return nil, fmt.Errorf("driver of type %s not implemented", dc.Type)
	}
}

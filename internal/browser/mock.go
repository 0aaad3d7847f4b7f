package browser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// A MockPage describes one page served by the MockDriver. Content is the
// initially rendered HTML; every scroll to the bottom appends the next
// chunk from Loads, simulating lazy-loaded content.
type MockPage struct {
	URL     string   `yaml:"url"`
	Content string   `yaml:"content"`
	Loads   []string `yaml:"loads,omitempty"`
}

// The MockDriver serves static HTML parsed with goquery instead of driving
// a browser.
type MockDriver struct {
	pagesMap map[string]MockPage
	page     MockPage
	doc      *goquery.Document
	loaded   int
	height   int64

	// call counters, read by tests
	ScrollCalls int
	HeightCalls int
}

func NewMockDriver(dc *DriverConfig) *MockDriver {
	d := &MockDriver{
		pagesMap: map[string]MockPage{},
	}
	for _, p := range dc.MockPages {
		d.pagesMap[p.URL] = p
	}
	return d
}

func (d *MockDriver) Navigate(ctx context.Context, urlStr string, timeout time.Duration) error {
	p, ok := d.pagesMap[urlStr]
	if !ok {
		return errors.New("page not found")
	}
	d.page = p
	d.loaded = 0
	return d.render()
}

func (d *MockDriver) render() error {
	html := d.page.Content + strings.Join(d.page.Loads[:d.loaded], "")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}
	d.doc = doc
	d.height = int64(len(html))
	return nil
}

func (d *MockDriver) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	if d.doc == nil {
		return errors.New("no page loaded")
	}
	if d.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("no element matching %q: %w", selector, context.DeadlineExceeded)
	}
	return nil
}

func (d *MockDriver) Elements(ctx context.Context, selector string) ([]Element, error) {
	if d.doc == nil {
		return nil, errors.New("no page loaded")
	}
	var elements []Element
	d.doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		elements = append(elements, &mockElement{sel: s})
	})
	return elements, nil
}

func (d *MockDriver) FindText(ctx context.Context, pattern string) (string, bool, error) {
	if d.doc == nil {
		return "", false, errors.New("no page loaded")
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return "", false, err
	}
	var found string
	d.doc.Find("div, span").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text != "" && re.MatchString(text) {
			found = text
			return false
		}
		return true
	})
	return found, found != "", nil
}

func (d *MockDriver) ScrollToBottom(ctx context.Context) error {
	d.ScrollCalls++
	if d.loaded < len(d.page.Loads) {
		d.loaded++
		return d.render()
	}
	return nil
}

func (d *MockDriver) PageHeight(ctx context.Context) (int64, error) {
	d.HeightCalls++
	return d.height, nil
}

// To comply with the Driver interface
func (d *MockDriver) Close() {}

type mockElement struct {
	sel *goquery.Selection
}

func (e *mockElement) Text(ctx context.Context, selector string, timeout time.Duration) (string, error) {
	sub := e.sel.Find(selector)
	if sub.Length() == 0 {
		return "", fmt.Errorf("no element matching %q: %w", selector, context.DeadlineExceeded)
	}
	return sub.First().Text(), nil
}

package browser

import (
	"context"
	"errors"
	"testing"
)

const mockPageContent = `
<html>
<body>
<div class="feed">
	<article class="post"><span class="text">hello</span></article>
</div>
</body>
</html>
`

func newTestMockDriver() *MockDriver {
	return NewMockDriver(&DriverConfig{
		Type: MockDriverType,
		MockPages: []MockPage{
			{
				URL:     "https://example.com/feed",
				Content: mockPageContent,
				Loads: []string{
					`<article class="post"><span class="text">more</span></article>`,
				},
			},
		},
	})
}

func TestMockDriverNavigateUnknownPage(t *testing.T) {
	d := newTestMockDriver()
	if err := d.Navigate(context.Background(), "https://example.com/nope", 0); err == nil {
		t.Fatal("expected an error for an unknown page")
	}
}

func TestMockDriverScrollLoadsContent(t *testing.T) {
	d := newTestMockDriver()
	ctx := context.Background()
	if err := d.Navigate(ctx, "https://example.com/feed", 0); err != nil {
		t.Fatalf("unexpected navigation error: %v", err)
	}

	elements, err := d.Elements(ctx, "article.post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("expected 1 post before scrolling, got %d", len(elements))
	}
	before, err := d.PageHeight(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := d.ScrollToBottom(ctx); err != nil {
		t.Fatalf("unexpected scroll error: %v", err)
	}
	elements, err = d.Elements(ctx, "article.post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("expected 2 posts after scrolling, got %d", len(elements))
	}
	after, err := d.PageHeight(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after <= before {
		t.Errorf("expected page height to grow, got %d -> %d", before, after)
	}

	// no more chunks, height must stay put
	if err := d.ScrollToBottom(ctx); err != nil {
		t.Fatalf("unexpected scroll error: %v", err)
	}
	final, err := d.PageHeight(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if final != after {
		t.Errorf("expected page height to stay at %d, got %d", after, final)
	}
}

func TestMockDriverFindText(t *testing.T) {
	d := newTestMockDriver()
	ctx := context.Background()
	if err := d.Navigate(ctx, "https://example.com/feed", 0); err != nil {
		t.Fatalf("unexpected navigation error: %v", err)
	}

	text, found, err := d.FindText(ctx, "HELLO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected a case-insensitive match")
	}
	if text != "hello" {
		t.Errorf("expected matched text hello, got %q", text)
	}

	_, found, err = d.FindText(ctx, "account suspended")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("did not expect a match")
	}
}

func TestMockDriverWaitVisibleTimeout(t *testing.T) {
	d := newTestMockDriver()
	ctx := context.Background()
	if err := d.Navigate(ctx, "https://example.com/feed", 0); err != nil {
		t.Fatalf("unexpected navigation error: %v", err)
	}
	err := d.WaitVisible(ctx, "div.missing", 0)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected a deadline exceeded error, got %v", err)
	}
}

func TestMockElementTextMissingSelector(t *testing.T) {
	d := newTestMockDriver()
	ctx := context.Background()
	if err := d.Navigate(ctx, "https://example.com/feed", 0); err != nil {
		t.Fatalf("unexpected navigation error: %v", err)
	}
	elements, err := d.Elements(ctx, "article.post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := elements[0].Text(ctx, "span.nope", 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected a deadline exceeded error, got %v", err)
	}
}

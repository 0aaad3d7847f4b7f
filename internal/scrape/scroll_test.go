package scrape

import (
	"context"
	"testing"

	"birdwatch/internal/browser"
)

func navigatedMockDriver(t *testing.T, config *Config, url string) *browser.MockDriver {
	t.Helper()
	d := browser.NewMockDriver(&config.Browser)
	if err := d.Navigate(context.Background(), url, 0); err != nil {
		t.Fatalf("unexpected navigation error: %v", err)
	}
	return d
}

func TestAutoScrollStopsAtTarget(t *testing.T) {
	config := newTestConfig(browser.MockPage{
		URL:     "https://twitter.com/jack",
		Content: profilePage,
		Loads:   []string{lazyLoadedPosts},
	})
	s := New(config, "jack", 3)
	d := navigatedMockDriver(t, config, "https://twitter.com/jack")

	s.autoScroll(context.Background(), d, 3)
	if d.ScrollCalls != 1 {
		t.Errorf("expected 1 scroll, got %d", d.ScrollCalls)
	}
}

func TestAutoScrollStopsWhenHeightSettles(t *testing.T) {
	config := newTestConfig(browser.MockPage{
		URL:     "https://twitter.com/jack",
		Content: profilePage,
	})
	s := New(config, "jack", 10)
	d := navigatedMockDriver(t, config, "https://twitter.com/jack")

	s.autoScroll(context.Background(), d, 10)
	// one scroll establishes the height, the second shows it settled
	if d.ScrollCalls != 2 {
		t.Errorf("expected 2 scrolls, got %d", d.ScrollCalls)
	}
	if d.HeightCalls != 2 {
		t.Errorf("expected 2 height measurements, got %d", d.HeightCalls)
	}
}

func TestAutoScrollRespectsAttemptCeiling(t *testing.T) {
	// every chunk changes the height, so only the ceiling can end the loop
	loads := make([]string, 10)
	for i := range loads {
		loads[i] = lazyLoadedPosts
	}
	config := newTestConfig(browser.MockPage{
		URL:     "https://twitter.com/jack",
		Content: profilePage,
		Loads:   loads,
	})
	config.ScrollAttempts = 3
	s := New(config, "jack", 100)
	d := navigatedMockDriver(t, config, "https://twitter.com/jack")

	s.autoScroll(context.Background(), d, 100)
	if d.ScrollCalls != 3 {
		t.Errorf("expected 3 scrolls, got %d", d.ScrollCalls)
	}
}

func TestAutoScrollCancelledContext(t *testing.T) {
	config := newTestConfig(browser.MockPage{
		URL:     "https://twitter.com/jack",
		Content: profilePage,
		Loads:   []string{lazyLoadedPosts},
	})
	s := New(config, "jack", 10)
	d := navigatedMockDriver(t, config, "https://twitter.com/jack")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.autoScroll(ctx, d, 10)
	if d.ScrollCalls != 1 {
		t.Errorf("expected the loop to end after the first scroll, got %d", d.ScrollCalls)
	}
}

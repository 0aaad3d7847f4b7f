package scrape

import (
	"context"
	"testing"
	"time"

	"birdwatch/internal/browser"
)

const brokenPostsPage = `
<html>
<body>
<article data-testid="tweet">
	<div data-testid="reply"><span>1</span></div>
	<div data-testid="like"><span>3</span></div>
</article>
<article data-testid="tweet">
	<div data-testid="tweetText">
		only text,
		no metrics
	</div>
</article>
</body>
</html>
`

func TestExtractPostSentinels(t *testing.T) {
	config := newTestConfig(browser.MockPage{
		URL:     "https://twitter.com/jack",
		Content: brokenPostsPage,
	})
	s := New(config, "jack", 2)
	d := navigatedMockDriver(t, config, "https://twitter.com/jack")

	elements, err := d.Elements(context.Background(), config.Selectors.Posts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("expected 2 post elements, got %d", len(elements))
	}

	rec, err := s.extractPost(context.Background(), elements[0], 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Content != ContentUnavailable {
		t.Errorf("expected content sentinel, got %q", rec.Content)
	}
	if rec.Retweets != MetricUnavailable {
		t.Errorf("expected metric sentinel, got %q", rec.Retweets)
	}
	if rec.Likes != "3" || rec.Replies != "1" {
		t.Errorf("expected present metrics to survive, got likes=%s replies=%s",
			rec.Likes, rec.Replies)
	}

	rec, err = s.extractPost(context.Background(), elements[1], 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Content != "only text,\n\t\tno metrics" {
		t.Errorf("expected surrounding whitespace to be trimmed, got %q", rec.Content)
	}
	if rec.Likes != MetricUnavailable || rec.Retweets != MetricUnavailable || rec.Replies != MetricUnavailable {
		t.Errorf("expected all metric sentinels, got likes=%s retweets=%s replies=%s",
			rec.Likes, rec.Retweets, rec.Replies)
	}
	if rec.Position != 2 {
		t.Errorf("expected position 2, got %d", rec.Position)
	}
}

func TestExtractPostRecovers(t *testing.T) {
	config := newTestConfig()
	s := New(config, "jack", 1)

	rec, err := s.extractPost(context.Background(), panickyElement{}, 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if rec != nil {
		t.Errorf("expected no record, got %+v", rec)
	}
}

type panickyElement struct{}

func (panickyElement) Text(ctx context.Context, selector string, timeout time.Duration) (string, error) {
	panic("unreachable")
}

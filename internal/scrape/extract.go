package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"birdwatch/internal/browser"
	"birdwatch/internal/log"
	"birdwatch/internal/types"
)

// Sentinel values substituted for fields whose element lookup fails. They
// keep the output schema stable across partially broken pages.
const (
	ContentUnavailable = "Content unavailable"
	MetricUnavailable  = "N/A"
)

// A fieldResult carries either the extracted text of one field or the
// lookup fault. The sentinel substitution happens once, at record
// assembly, so tests can still see the failure.
type fieldResult struct {
	value string
	err   error
}

func (r fieldResult) valueOr(sentinel string) string {
	if r.err != nil {
		return sentinel
	}
	return r.value
}

// textField waits for the sub-selector within the post element and returns
// its trimmed text.
func (s *Scraper) textField(ctx context.Context, el browser.Element, selector string) fieldResult {
	text, err := el.Text(ctx, selector, s.Config.Timeouts.Element())
	if err != nil {
		return fieldResult{err: err}
	}
	return fieldResult{value: strings.TrimSpace(text)}
}

// metricField is textField with an empty value normalized to "0": an
// engagement button without a number means zero interactions.
func (s *Scraper) metricField(ctx context.Context, el browser.Element, selector string) fieldResult {
	res := s.textField(ctx, el, selector)
	if res.err == nil && res.value == "" {
		res.value = "0"
	}
	return res
}

// extractPost reads one rendered post element into a PostRecord. Field
// lookup faults are swallowed into sentinel values; only an unexpected
// fault outside the per-field guards skips the whole post.
func (s *Scraper) extractPost(ctx context.Context, el browser.Element, position int) (rec *types.PostRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.LoggerFromContext(ctx).Error(fmt.Sprintf("post processing error: %v", r))
			rec, err = nil, fmt.Errorf("post processing error: %v", r)
		}
	}()

	content := s.textField(ctx, el, s.Config.Selectors.Content)
	likes := s.metricField(ctx, el, s.Config.Selectors.Like)
	retweets := s.metricField(ctx, el, s.Config.Selectors.Retweet)
	replies := s.metricField(ctx, el, s.Config.Selectors.Reply)

	return &types.PostRecord{
		Position:  position,
		Content:   content.valueOr(ContentUnavailable),
		Likes:     likes.valueOr(MetricUnavailable),
		Retweets:  retweets.valueOr(MetricUnavailable),
		Replies:   replies.valueOr(MetricUnavailable),
		Timestamp: time.Now(),
	}, nil
}

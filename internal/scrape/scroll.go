package scrape

import (
	"context"
	"fmt"
	"time"

	"birdwatch/internal/browser"
	"birdwatch/internal/log"
)

// autoScroll makes a best-effort attempt to get at least target post
// elements rendered by repeatedly scrolling to the bottom of the page. It
// stops when the target is reached, when scrolling no longer changes the
// page height, or after ScrollAttempts iterations. It never fails hard;
// faults end the loop with whatever is rendered at that point.
func (s *Scraper) autoScroll(ctx context.Context, d browser.Driver, target int) {
	logger := log.LoggerFromContext(ctx)
	var lastHeight int64
	current := 0
	attempt := 0

	for attempt < s.Config.ScrollAttempts {
		elements, err := d.Elements(ctx, s.Config.Selectors.Posts)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to count posts while scrolling: %v", err))
			break
		}
		current = len(elements)
		if current >= target {
			break
		}

		if err := d.ScrollToBottom(ctx); err != nil {
			logger.Warn(fmt.Sprintf("failed to scroll: %v", err))
			break
		}
		// give the page time to load content asynchronously
		select {
		case <-ctx.Done():
			logger.Warn("context done while waiting for content to load")
			return
		case <-time.After(s.Config.Timeouts.ScrollDelay()):
		}

		height, err := d.PageHeight(ctx)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to read page height: %v", err))
			break
		}
		if height == lastHeight {
			// no more content to load
			break
		}
		lastHeight = height
		attempt++
	}

	logger.Info(fmt.Sprintf("loaded %d posts after %d scrolls", current, attempt))
}

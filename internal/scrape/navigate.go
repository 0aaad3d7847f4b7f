package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"birdwatch/internal/browser"
	"birdwatch/internal/log"
)

// bannerMaxLen bounds how much of the error banner text is carried into
// the result.
const bannerMaxLen = 200

// navigateToProfile brings the page to a state where post elements are
// renderable. A nil return means at least one post container is visible.
func (s *Scraper) navigateToProfile(ctx context.Context, d browser.Driver) error {
	logger := log.LoggerFromContext(ctx)
	profileURL := fmt.Sprintf("https://twitter.com/%s", s.Username)
	logger.Debug("navigating to profile", slog.String("url", profileURL))

	if err := d.Navigate(ctx, profileURL, s.Config.Timeouts.Navigation()); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrNavigationTimeout
		}
		return &NavigationError{Err: err}
	}

	banner, found, err := d.FindText(ctx, s.Config.Selectors.ErrorBanner)
	if err != nil {
		return &NavigationError{Err: err}
	}
	if found {
		// truncate on runes, the banner text is not plain ascii
		if utf8.RuneCountInString(banner) > bannerMaxLen {
			banner = string([]rune(banner)[:bannerMaxLen])
		}
		return &ProfileError{Banner: banner}
	}

	if err := d.WaitVisible(ctx, s.Config.Selectors.Posts, s.Config.Timeouts.ContentLoad()); err != nil {
		return &NavigationError{Err: err}
	}
	return nil
}

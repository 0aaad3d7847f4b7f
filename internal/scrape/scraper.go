// Package scrape implements the scroll-and-extract loop over a profile
// page: navigate, scroll until enough posts are rendered, then read each
// post element into a record.
package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"birdwatch/internal/browser"
	"birdwatch/internal/log"
	"birdwatch/internal/types"
)

// A Scraper extracts a bounded number of posts from one profile.
type Scraper struct {
	Username  string
	PostCount int
	Config    *Config

	newDriver func(*browser.DriverConfig) (browser.Driver, error)
}

func New(config *Config, username string, postCount int) *Scraper {
	return &Scraper{
		Username:  username,
		PostCount: postCount,
		Config:    config,
		newDriver: browser.NewDriver,
	}
}

// Scrape runs one full scrape invocation. It always returns a result;
// terminal faults are recorded in the result's error list instead of being
// returned. The browser is closed exactly once on every exit path. The
// return value is named so that the recover below returns the result the
// fault was recorded on.
func (s *Scraper) Scrape(ctx context.Context) (result *types.Result) {
	logger := log.LoggerFromContext(ctx).With(slog.String("username", s.Username))
	ctx = log.ContextWithLogger(ctx, logger)
	result = types.NewResult(s.Username, s.PostCount)

	d, err := s.newDriver(&s.Config.Browser)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Runtime error: %v", err))
		return result
	}
	defer d.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("scraping failed: %v", r))
			result.Errors = append(result.Errors, fmt.Sprintf("Runtime error: %v", r))
		}
	}()

	if err := s.navigateToProfile(ctx, d); err != nil {
		logger.Error(err.Error())
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	s.autoScroll(ctx, d, s.PostCount)

	elements, err := d.Elements(ctx, s.Config.Selectors.Posts)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Runtime error: %v", err))
		return result
	}
	if len(elements) > s.PostCount {
		elements = elements[:s.PostCount]
	}
	result.ScrapedPosts = len(elements)

	for i, el := range elements {
		rec, err := s.extractPost(ctx, el, i+1)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to process post %d", i+1))
			continue
		}
		result.Posts = append(result.Posts, *rec)
	}
	return result
}

// Package types defines shared types used across the application.
package types

import "time"

// PostRecord holds the extracted data of a single rendered post. Metric
// counts are kept as display strings ("1.2K", "N/A") and never normalized
// to numbers.
type PostRecord struct {
	Position  int       `json:"position"`
	Content   string    `json:"content"`
	Likes     string    `json:"likes"`
	Retweets  string    `json:"retweets"`
	Replies   string    `json:"replies"`
	Timestamp time.Time `json:"timestamp"`
}

// Result represents the outcome of one profile scrape. ScrapedPosts counts
// the post elements that were attempted, so it can exceed len(Posts) when
// individual posts fail to extract.
type Result struct {
	Username       string       `json:"username"`
	RequestedPosts int          `json:"requested_posts"`
	ScrapedPosts   int          `json:"scraped_posts"`
	Posts          []PostRecord `json:"posts"`
	Errors         []string     `json:"errors"`
}

// NewResult returns an empty result for the given request. Posts and Errors
// are initialized so that they marshal as [] instead of null.
func NewResult(username string, requested int) *Result {
	return &Result{
		Username:       username,
		RequestedPosts: requested,
		Posts:          []PostRecord{},
		Errors:         []string{},
	}
}

package scrape

import (
	"errors"
	"fmt"
)

// The error strings below end up verbatim in the result document, which is
// why they do not follow the usual lower-case convention.

// ErrNavigationTimeout indicates that the profile page did not load within
// the navigation timeout.
var ErrNavigationTimeout = errors.New("Timeout waiting for profile to load")

// A ProfileError indicates that the profile page rendered an explicit
// error banner (suspended or nonexistent account) instead of posts.
type ProfileError struct {
	Banner string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("Profile error: %s", e.Banner)
}

// A NavigationError wraps any other fault that prevented the page from
// reaching a state where posts are renderable.
type NavigationError struct {
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("Navigation error: %v", e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Package command parses the free-text scrape command given on the
// command line.
package command

import (
	"errors"
	"regexp"
	"strconv"
)

// commandExp deliberately only anchors at the start; trailing text after
// "posts" is tolerated.
var commandExp = regexp.MustCompile(`^analyze twitter account (\w+) get (\d+) posts?`)

// ErrInvalidCommand is returned for any command string that does not match
// the expected pattern.
var ErrInvalidCommand = errors.New("invalid command format")

// Request is the parsed form of a scrape command.
type Request struct {
	Username  string
	PostCount int
}

// Parse matches the given command string against
// "analyze twitter account <username> get <N> post(s)".
func Parse(cmd string) (*Request, error) {
	m := commandExp.FindStringSubmatch(cmd)
	if m == nil {
		return nil, ErrInvalidCommand
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		// \d+ can still overflow int
		return nil, ErrInvalidCommand
	}
	return &Request{
		Username:  m[1],
		PostCount: count,
	}, nil
}

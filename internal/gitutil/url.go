// Package gitutil parses pull request references given on the command line.
package gitutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sevigo/reviewpilot/internal/core"
)

// Matches https://<host>/{owner}/{repo}/pull/{number}, with or without scheme,
// so GitHub Enterprise hosts are accepted as well.
var prURLRegex = regexp.MustCompile(`^(?:https?://)?[^/]+/([^/]+)/([^/]+)/pull/(\d+)$`)

// ParsePullRequestURL parses a pull request URL and extracts the owner, repo, and PR number.
// Supported format: https://github.com/{owner}/{repo}/pull/{number}
func ParsePullRequestURL(url string) (owner, repo string, prNumber int, err error) {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")

	matches := prURLRegex.FindStringSubmatch(url)
	if len(matches) != 4 {
		return "", "", 0, fmt.Errorf("invalid pull request URL format: %s", url)
	}

	prNumber, err = strconv.Atoi(matches[3])
	if err != nil || prNumber <= 0 {
		return "", "", 0, fmt.Errorf("invalid PR number '%s'", matches[3])
	}
	return matches[1], matches[2], prNumber, nil
}

// ParseRef accepts either a single pull request URL or the three positional
// values owner, repo and number.
func ParseRef(args []string) (core.PullRequestRef, error) {
	switch len(args) {
	case 1:
		owner, repo, number, err := ParsePullRequestURL(args[0])
		if err != nil {
			return core.PullRequestRef{}, err
		}
		return core.PullRequestRef{Owner: owner, Repo: repo, Number: number}, nil
	case 3:
		number, err := strconv.Atoi(args[2])
		if err != nil || number <= 0 {
			return core.PullRequestRef{}, fmt.Errorf("invalid PR number '%s'", args[2])
		}
		if args[0] == "" || args[1] == "" {
			return core.PullRequestRef{}, fmt.Errorf("owner and repo must not be empty")
		}
		return core.PullRequestRef{Owner: args[0], Repo: args[1], Number: number}, nil
	default:
		return core.PullRequestRef{}, fmt.Errorf("expected <pr-url> or <owner> <repo> <number>, got %d arguments", len(args))
	}
}

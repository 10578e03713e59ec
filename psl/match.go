package psl

import (
	"errors"
)

var (
	// ErrInvalidTLD is returned when a host has no registrable domain:
	// either it has fewer than two labels, or the host itself is a
	// public suffix with no label left of it.
	ErrInvalidTLD = errors.New("invalid TLD: host has no registrable domain")

	// ErrTooFewLabels is returned by Guess when the host has fewer
	// labels than requested.
	ErrTooFewLabels = errors.New("host has fewer labels than requested")
)

// Result holds the outcome of a match. RegistrableDomain is always
// exactly one label longer than PublicSuffix, and both are suffixes of
// the matched host.
type Result struct {
	PublicSuffix      []string
	RegistrableDomain []string

	// Rule is the prevailing rule, nil when the implicit rule applied.
	Rule *Rule
}

// Match runs the public suffix algorithm for host, given as lowercase
// labels with the top-level label last.
//
// The prevailing rule is the longest match, with exception rules taking
// precedence over wildcard rules of the same length; an exception's
// public suffix is the matched candidate minus its leftmost label. When
// no explicit rule matches, the implicit rule applies and the top-level
// label alone is the public suffix. Private-section rules participate
// only when includePrivate is set.
func (s *Store) Match(host []string, includePrivate bool) (Result, error) {
	if len(host) < 2 {
		return Result{}, ErrInvalidTLD
	}

	var suffix []string

	rule := s.Search(host, includePrivate)
	switch {
	case rule == nil:
		suffix = host[len(host)-1:]
	case rule.Exception:
		// The exception carves its host out of a broader wildcard:
		// the public suffix is the candidate's parent.
		cand := host[len(host)-len(rule.Labels):]
		suffix = cand[1:]
	default:
		// A wildcard's leftmost label already consumed one host label,
		// so its matched length equals its label count either way.
		suffix = host[len(host)-len(rule.Labels):]
	}

	if len(suffix) == len(host) {
		return Result{}, ErrInvalidTLD
	}

	return Result{
		PublicSuffix:      suffix,
		RegistrableDomain: host[len(host)-len(suffix)-1:],
		Rule:              rule,
	}, nil
}

// Guess returns the last minLabels labels of host as a best-effort
// registrable domain, for use when no ruleset is available. It fails
// when the host has fewer labels than requested.
func Guess(host []string, minLabels int) ([]string, error) {
	if minLabels < 1 {
		return nil, ErrTooFewLabels
	}
	if len(host) < minLabels {
		return nil, ErrTooFewLabels
	}
	return host[len(host)-minLabels:], nil
}

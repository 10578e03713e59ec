package psl

import (
	"strings"
)

// Section tags which part of the public suffix list a rule came from.
type Section uint8

const (
	SectionNone Section = iota // rule outside any marked section
	SectionICANN
	SectionPrivate
)

func (s Section) String() string {
	switch s {
	case SectionICANN:
		return "icann"
	case SectionPrivate:
		return "private"
	default:
		return "none"
	}
}

// Rule is one parsed entry of the public suffix list.
// Labels are stored in hostname order, top-level label last,
// so "co.uk" is ["co","uk"]. A wildcard rule keeps the literal
// "*" as its leftmost label. Rules are immutable once parsed.
type Rule struct {
	Labels    []string
	Wildcard  bool
	Exception bool
	Section   Section
}

// ParseRule parses a single rule line, already stripped of comments
// and surrounding whitespace.
func ParseRule(line string, section Section) (Rule, error) {
	var r Rule
	r.Section = section

	if line == "" {
		return r, errEmptyRule
	}

	if line[0] == '!' {
		r.Exception = true
		line = line[1:]
	}

	line = strings.ToLower(line)
	labels := strings.Split(line, ".")
	for _, l := range labels {
		if l == "" {
			return r, errBadRule
		}
	}

	if labels[0] == "*" {
		r.Wildcard = true
	}
	if r.Wildcard && r.Exception {
		return r, errBadRule
	}

	r.Labels = labels
	return r, nil
}

// String renders the rule back in list syntax: "!city.kobe.jp", "*.ck", "com".
func (r Rule) String() string {
	s := strings.Join(r.Labels, ".")
	if r.Exception {
		return "!" + s
	}
	return s
}

func (r Rule) clone() Rule {
	c := r
	c.Labels = make([]string, len(r.Labels))
	copy(c.Labels, r.Labels)
	return c
}

// equal reports whether two rules have identical labels and flags.
func (r Rule) equal(o Rule) bool {
	if r.Wildcard != o.Wildcard || r.Exception != o.Exception || len(r.Labels) != len(o.Labels) {
		return false
	}
	for i := range r.Labels {
		if r.Labels[i] != o.Labels[i] {
			return false
		}
	}
	return true
}

// compareLabels orders label sequences so that the longest, most specific
// rules come first: more labels sort ahead, ties compare label by label
// from the top-level end. Search correctness depends on this order.
func compareLabels(a, b []string) int {
	if len(a) != len(b) {
		return len(b) - len(a)
	}
	for i := len(a) - 1; i >= 0; i-- {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareRules breaks label ties by putting exception rules first,
// so a lookup on equal labels deterministically finds the exception.
func compareRules(a, b Rule) int {
	if c := compareLabels(a.Labels, b.Labels); c != 0 {
		return c
	}
	if a.Exception != b.Exception {
		if a.Exception {
			return -1
		}
		return 1
	}
	return 0
}

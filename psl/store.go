package psl

import (
	"bufio"
	"io"
	"iter"
	"slices"
)

// Store is an ordered collection of rules supporting binary search.
// The slice is kept sorted by compareRules at all times, so Search is
// O(log n) per candidate. A Store is not safe for concurrent mutation;
// build it fully, then share it read-only.
type Store struct {
	rules []Rule
}

// NewStore creates an empty store. The capacity hint avoids reallocation
// during bulk load and may be zero.
func NewStore(capacity int) *Store {
	return &Store{
		rules: make([]Rule, 0, capacity),
	}
}

// Reserve grows the backing capacity without changing the contents.
func (s *Store) Reserve(n int) {
	s.rules = slices.Grow(s.rules, n)
}

func (s *Store) Len() int {
	return len(s.rules)
}

func (s *Store) Cap() int {
	return cap(s.rules)
}

// Add inserts a rule at its sorted position. Rules identical in labels
// and flags are deduplicated.
func (s *Store) Add(r Rule) {
	i, found := slices.BinarySearchFunc(s.rules, r, compareRules)
	if found && s.rules[i].equal(r) {
		return
	}
	s.rules = slices.Insert(s.rules, i, r)
}

// append adds without keeping order; callers must Sort afterwards.
// Used by the parser for bulk load.
func (s *Store) append(r Rule) {
	s.rules = append(s.rules, r)
}

// Sort restores the search order after bulk inserts. Idempotent.
func (s *Store) Sort() {
	slices.SortFunc(s.rules, compareRules)
	s.rules = slices.CompactFunc(s.rules, Rule.equal)
}

func (s *Store) Clear() {
	s.rules = s.rules[:0]
}

// Clone returns a deep, independent copy.
func (s *Store) Clone() *Store {
	c := NewStore(len(s.rules))
	for _, r := range s.rules {
		c.rules = append(c.rules, r.clone())
	}
	return c
}

// Iter yields the rules in sorted order. The sequence is restartable.
func (s *Store) Iter() iter.Seq[*Rule] {
	return func(yield func(*Rule) bool) {
		for i := range s.rules {
			if !yield(&s.rules[i]) {
				return
			}
		}
	}
}

// lookup binary-searches for a rule with exactly the given labels.
// When an exception and a plain rule share labels, the exception is
// found first by construction of the sort order.
func (s *Store) lookup(labels []string) *Rule {
	i, found := slices.BinarySearchFunc(s.rules, Rule{Labels: labels}, func(r, t Rule) int {
		return compareLabels(r.Labels, t.Labels)
	})
	if !found {
		return nil
	}
	// The compare above ignores flags, so i is the first rule of the
	// equal-labels run, which is the exception rule when one exists.
	return &s.rules[i]
}

// Search finds the longest rule whose labels suffix-match host, with the
// leftmost label of a wildcard rule matching any single host label.
// Exception rules take precedence over wildcard rules of the same length.
// Private-section rules are skipped unless includePrivate is set, as if
// absent from the store. Returns nil when no explicit rule matches;
// callers then apply the implicit rule of the public suffix algorithm.
func (s *Store) Search(host []string, includePrivate bool) *Rule {
	if len(s.rules) == 0 || len(host) == 0 {
		return nil
	}

	// Longest candidate first. An exact lookup at a given length finds
	// exception rules before plain ones; the wildcard probe follows.
	wild := make([]string, 0, len(host))
	for n := len(host); n >= 1; n-- {
		cand := host[len(host)-n:]

		if r := s.lookup(cand); r != nil && s.usable(r, includePrivate) {
			return r
		}

		wild = append(wild[:0], "*")
		wild = append(wild, cand[1:]...)
		if r := s.lookup(wild); r != nil && s.usable(r, includePrivate) {
			return r
		}
	}
	return nil
}

func (s *Store) usable(r *Rule, includePrivate bool) bool {
	return includePrivate || r.Section != SectionPrivate
}

// WriteText writes the rules back in public suffix list syntax, with
// section markers around the ICANN and private partitions. Parsing the
// output yields a store with equivalent matching behavior.
func (s *Store) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	writeSection := func(sec Section, begin, end string) {
		open := false
		for r := range s.Iter() {
			if r.Section != sec {
				continue
			}
			if !open && begin != "" {
				bw.WriteString(begin)
				bw.WriteByte('\n')
				open = true
			}
			bw.WriteString(r.String())
			bw.WriteByte('\n')
		}
		if open && end != "" {
			bw.WriteString(end)
			bw.WriteByte('\n')
		}
	}

	writeSection(SectionNone, "", "")
	writeSection(SectionICANN, beginICANN, endICANN)
	writeSection(SectionPrivate, beginPrivate, endPrivate)

	return bw.Flush()
}

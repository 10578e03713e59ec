package psl

import (
	"math/rand"
	"strings"
	"testing"
)

func mustRule(t *testing.T, line string, section Section) Rule {
	t.Helper()
	r, err := ParseRule(line, section)
	if err != nil {
		t.Fatalf("parse rule %q: %v", line, err)
	}
	return r
}

func labels(s string) []string {
	return strings.Split(s, ".")
}

func TestStore_AddKeepsSearchOrder(t *testing.T) {
	lines := []string{"com", "uk", "co.uk", "jp", "kobe.jp", "*.kobe.jp", "!city.kobe.jp", "org", "ac.uk"}

	// search results must not depend on insertion order
	for i := 0; i < 20; i++ {
		s := NewStore(0)
		shuffled := append([]string(nil), lines...)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		for _, l := range shuffled {
			s.Add(mustRule(t, l, SectionICANN))
		}

		r := s.Search(labels("www.example.co.uk"), false)
		if r == nil || r.String() != "co.uk" {
			t.Fatalf("insertion order %v: want co.uk, got %v", shuffled, r)
		}

		r = s.Search(labels("www.city.kobe.jp"), false)
		if r == nil || !r.Exception {
			t.Fatalf("insertion order %v: want exception rule, got %v", shuffled, r)
		}
	}
}

func TestStore_AddDedup(t *testing.T) {
	s := NewStore(0)
	s.Add(mustRule(t, "com", SectionICANN))
	s.Add(mustRule(t, "com", SectionICANN))
	if s.Len() != 1 {
		t.Fatalf("want 1 rule after duplicate add, got %d", s.Len())
	}
}

func TestStore_SortIdempotent(t *testing.T) {
	s := NewStore(4)
	for _, l := range []string{"co.uk", "com", "uk"} {
		s.append(mustRule(t, l, SectionICANN))
	}
	s.Sort()
	s.Sort()

	if r := s.Search(labels("example.co.uk"), false); r == nil || r.String() != "co.uk" {
		t.Fatalf("want co.uk, got %v", r)
	}
}

func TestStore_SearchEmpty(t *testing.T) {
	s := NewStore(0)
	if r := s.Search(labels("example.com"), false); r != nil {
		t.Fatalf("empty store should not match, got %v", r)
	}
}

func TestStore_SearchSkipsPrivate(t *testing.T) {
	s := NewStore(0)
	s.Add(mustRule(t, "io", SectionICANN))
	s.Add(mustRule(t, "github.io", SectionPrivate))

	r := s.Search(labels("foo.github.io"), true)
	if r == nil || r.String() != "github.io" {
		t.Fatalf("with private: want github.io, got %v", r)
	}

	r = s.Search(labels("foo.github.io"), false)
	if r == nil || r.String() != "io" {
		t.Fatalf("without private: want io, got %v", r)
	}
}

func TestStore_CloneIndependent(t *testing.T) {
	s := NewStore(0)
	s.Add(mustRule(t, "com", SectionICANN))

	c := s.Clone()
	c.Add(mustRule(t, "org", SectionICANN))
	c.Clear()

	if s.Len() != 1 {
		t.Fatalf("mutating the clone changed the original, len=%d", s.Len())
	}
	if r := s.Search(labels("example.com"), false); r == nil {
		t.Fatal("original lost its rule after clone mutation")
	}
}

func TestStore_IterRestartable(t *testing.T) {
	s := NewStore(0)
	for _, l := range []string{"com", "org", "co.uk"} {
		s.Add(mustRule(t, l, SectionICANN))
	}

	seq := s.Iter()
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 3 || b != 3 {
		t.Fatalf("iteration not restartable: %d then %d", a, b)
	}

	// sorted order: more labels first
	var first *Rule
	for r := range s.Iter() {
		first = r
		break
	}
	if first.String() != "co.uk" {
		t.Fatalf("want co.uk first in sorted order, got %v", first)
	}
}

func TestStore_ReserveKeepsContents(t *testing.T) {
	s := NewStore(0)
	s.Add(mustRule(t, "com", SectionICANN))
	s.Reserve(100)

	if s.Len() != 1 {
		t.Fatalf("reserve changed logical size: %d", s.Len())
	}
	if s.Cap() < 100 {
		t.Fatalf("reserve did not grow capacity: %d", s.Cap())
	}
}

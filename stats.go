package gotld

import (
	"github.com/0990/gotld/psl"
)

// Stats is a read-only snapshot of the loaded ruleset and the lookup
// counters. All values are derived; none are authoritative state.
type Stats struct {
	RulesTotal     int
	RulesICANN     int
	RulesPrivate   int
	RulesWildcard  int
	RulesException int

	// RulesByDepth counts rules per label count.
	RulesByDepth map[int]int

	Lookups   uint64
	CacheHits uint64
}

func (f *FQDN) Stats() Stats {
	s := Stats{
		RulesByDepth: make(map[int]int),
		Lookups:      f.lookups.Load(),
		CacheHits:    f.cacheHits.Load(),
	}

	rs := f.ruleset.Load()
	if rs == nil {
		return s
	}

	for r := range rs.store.Iter() {
		s.RulesTotal++
		switch r.Section {
		case psl.SectionICANN:
			s.RulesICANN++
		case psl.SectionPrivate:
			s.RulesPrivate++
		}
		if r.Wildcard {
			s.RulesWildcard++
		}
		if r.Exception {
			s.RulesException++
		}
		s.RulesByDepth[len(r.Labels)]++
	}
	return s
}

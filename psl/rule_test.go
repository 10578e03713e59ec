package psl

import "testing"

func TestParseRule(t *testing.T) {
	tests := []struct {
		line      string
		wantStr   string
		wildcard  bool
		exception bool
		wantErr   bool
	}{
		{line: "com", wantStr: "com"},
		{line: "co.uk", wantStr: "co.uk"},
		{line: "CO.UK", wantStr: "co.uk"},
		{line: "*.kobe.jp", wantStr: "*.kobe.jp", wildcard: true},
		{line: "!city.kobe.jp", wantStr: "!city.kobe.jp", exception: true},
		{line: "", wantErr: true},
		{line: "..", wantErr: true},
		{line: ".com", wantErr: true},
		{line: "com.", wantErr: true},
		{line: "!*.bad", wantErr: true}, // a rule cannot be both wildcard and exception
	}

	for _, tt := range tests {
		r, err := ParseRule(tt.line, SectionICANN)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: want error, got %v", tt.line, r)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.line, err)
			continue
		}
		if r.String() != tt.wantStr {
			t.Errorf("%q: rendered as %q", tt.line, r.String())
		}
		if r.Wildcard != tt.wildcard || r.Exception != tt.exception {
			t.Errorf("%q: flags wildcard=%v exception=%v", tt.line, r.Wildcard, r.Exception)
		}
	}
}

func TestCompareRules(t *testing.T) {
	lt := func(a, b string) {
		t.Helper()
		ra := mustRule(t, a, SectionICANN)
		rb := mustRule(t, b, SectionICANN)
		if compareRules(ra, rb) >= 0 {
			t.Errorf("want %q before %q", a, b)
		}
	}

	// more labels sort first
	lt("*.kobe.jp", "co.uk")
	lt("co.uk", "com")
	// ties compare from the top-level end
	lt("co.uk", "ac.zw")
	lt("kobe.jp", "co.uk")
	// exception ahead of the plain rule on identical labels
	lt("!www.ck", "www.ck")
}

package psl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	beginICANN   = "// ===BEGIN ICANN DOMAINS==="
	endICANN     = "// ===END ICANN DOMAINS==="
	beginPrivate = "// ===BEGIN PRIVATE DOMAINS==="
	endPrivate   = "// ===END PRIVATE DOMAINS==="
)

var (
	// ErrInvalidEncoding is returned when the list data is not valid UTF-8.
	ErrInvalidEncoding = errors.New("public suffix data is not valid UTF-8")

	// ErrNoRules is returned when a non-empty input yields no usable rules.
	ErrNoRules = errors.New("no usable rules in public suffix data")

	errEmptyRule = errors.New("empty rule")
	errBadRule   = errors.New("malformed rule")
)

// Parse converts raw public suffix list text into a sorted store.
//
// Parsing is tolerant: malformed rule lines are skipped and logged, and
// the parse succeeds as long as at least one usable rule was found.
// Input that is empty or all whitespace is a valid empty ruleset; input
// with content but zero usable rules fails with ErrNoRules.
func Parse(data []byte) (*Store, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	store := NewStore(lineCountHint(data))
	section := SectionNone

	var (
		lineErrs MultiError
		sawText  bool
		lineNum  int
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sawText = true

		if strings.HasPrefix(line, "//") {
			switch {
			case strings.Contains(line, "===BEGIN ICANN DOMAINS==="):
				section = SectionICANN
			case strings.Contains(line, "===END ICANN DOMAINS==="):
				section = SectionNone
			case strings.Contains(line, "===BEGIN PRIVATE DOMAINS==="):
				section = SectionPrivate
			case strings.Contains(line, "===END PRIVATE DOMAINS==="):
				section = SectionNone
			}
			continue
		}

		// The list format allows trailing annotations after whitespace.
		if i := strings.IndexAny(line, " \t"); i != -1 {
			line = line[:i]
		}

		rule, err := ParseRule(line, section)
		if err != nil {
			lineErrs.Add(fmt.Errorf("line %d: %q: %w", lineNum, line, err))
			continue
		}
		store.append(rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	store.Sort()

	if store.Len() == 0 {
		if sawText {
			if lineErrs.Empty() {
				return nil, ErrNoRules
			}
			return nil, fmt.Errorf("%w: %s", ErrNoRules, lineErrs.Error())
		}
		return store, nil // empty list is a valid, if useless, ruleset
	}

	if !lineErrs.Empty() {
		logrus.WithFields(logrus.Fields{
			"skipped": lineErrs.Len(),
			"rules":   store.Len(),
		}).Warn("skipped malformed public suffix rules: ", lineErrs.Error())
	}

	return store, nil
}

// lineCountHint estimates the rule capacity from the newline count.
func lineCountHint(data []byte) int {
	return bytes.Count(data, []byte{'\n'})
}

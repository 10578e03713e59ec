package gotld

import (
	"errors"

	"github.com/0990/gotld/psl"
)

var (
	// ErrInvalidURL is returned when the input cannot be reduced to a
	// usable hostname.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidTLD is returned when the host has no registrable domain
	// under the loaded ruleset.
	ErrInvalidTLD = psl.ErrInvalidTLD

	// ErrNotInitialized is returned by matching calls before a
	// successful Init.
	ErrNotInitialized = errors.New("public suffix list not initialized")
)

// DownloadError reports a failure to fetch the public suffix list.
type DownloadError struct {
	Err error
}

func (e *DownloadError) Error() string {
	return "failed to download public suffix list: " + e.Err.Error()
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ParseError reports that list data could not be decoded or parsed.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "failed to parse public suffix list: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports that the data is not a public suffix list at all.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "not a public suffix list: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

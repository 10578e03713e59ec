package gotld

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/0990/gotld/pkg/cache"
	"github.com/0990/gotld/psl"
	"github.com/sirupsen/logrus"
)

// Result is a successful extraction. RegistrableDomain is the public
// suffix plus exactly one label.
type Result struct {
	Host              string
	PublicSuffix      string
	RegistrableDomain string
	ICANN             bool // matched an ICANN-section rule
}

// FQDN extracts registrable domains from URLs and hostnames using the
// public suffix list.
//
// The ruleset and its result cache are built fully off to the side on
// Init and published with a single atomic swap, so concurrent Extract
// calls always observe either the previous complete ruleset or the new
// one, never a partial load. Re-Init is allowed; the last successful
// load wins.
type FQDN struct {
	*options

	ruleset atomic.Pointer[ruleset]

	lookups   atomic.Uint64
	cacheHits atomic.Uint64
}

type ruleset struct {
	store *psl.Store
	cache cache.Cache[Result]
}

// New creates a manager. No I/O happens until Init.
func New(opts ...Option) (*FQDN, error) {
	o := newOptions()
	for _, f := range opts {
		if err := f(o); err != nil {
			return nil, err
		}
	}

	return &FQDN{options: o}, nil
}

// Init loads the public suffix list from the configured source, parses
// it, and publishes the ruleset. Until the first successful Init every
// matching call fails with ErrNotInitialized. On failure the previously
// published ruleset, if any, stays in effect.
func (f *FQDN) Init(ctx context.Context) error {
	source := f.SourceFile
	if source == "" {
		source = f.SourceURL
	}
	logger := logrus.WithField("source", source)

	start := time.Now()

	data, err := f.loadList(ctx)
	if err != nil {
		return err
	}

	if !looksLikePSL(data) {
		return &FormatError{Err: errNoMarker}
	}

	store, err := psl.Parse(data)
	if err != nil {
		if errors.Is(err, psl.ErrNoRules) {
			return &FormatError{Err: err}
		}
		return &ParseError{Err: err}
	}

	f.ruleset.Store(&ruleset{
		store: store,
		cache: cache.New[Result](f.CacheExpireSec),
	})

	logger.WithFields(logrus.Fields{
		"rules": store.Len(),
		"rtt":   timeSinceMS(start),
	}).Info("public suffix list loaded")
	return nil
}

// Ready reports whether a ruleset has been published.
func (f *FQDN) Ready() bool {
	return f.ruleset.Load() != nil
}

// Extract returns the public suffix and registrable domain of a URL or
// bare hostname.
func (f *FQDN) Extract(srcURL string) (Result, error) {
	rs := f.ruleset.Load()
	if rs == nil {
		return Result{}, ErrNotInitialized
	}

	host, err := NormalizeHost(srcURL)
	if err != nil {
		return Result{}, err
	}

	f.lookups.Add(1)

	if v, ok := rs.cache.Get(host); ok {
		f.cacheHits.Add(1)
		return v, nil
	}

	labels, err := hostLabels(host)
	if err != nil {
		return Result{}, err
	}

	m, err := rs.store.Match(labels, f.AllowPrivateTLDs)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Host:              host,
		PublicSuffix:      strings.Join(m.PublicSuffix, "."),
		RegistrableDomain: strings.Join(m.RegistrableDomain, "."),
		ICANN:             m.Rule != nil && m.Rule.Section == psl.SectionICANN,
	}
	rs.cache.Set(host, res)
	return res, nil
}

// GetFQDN returns the registrable domain (eTLD+1) of a URL or hostname.
func (f *FQDN) GetFQDN(srcURL string) (string, error) {
	res, err := f.Extract(srcURL)
	if err != nil {
		return "", err
	}
	return res.RegistrableDomain, nil
}

// Guess returns the last minLabels labels of the host as a best-effort
// registrable domain. It needs no ruleset and fails when the host has
// fewer labels than requested.
func (f *FQDN) Guess(srcURL string, minLabels int) (string, error) {
	host, err := NormalizeHost(srcURL)
	if err != nil {
		return "", err
	}
	labels, err := hostLabels(host)
	if err != nil {
		return "", err
	}
	guessed, err := psl.Guess(labels, minLabels)
	if err != nil {
		return "", err
	}
	return strings.Join(guessed, "."), nil
}

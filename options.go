package gotld

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// DefaultListURL is the canonical location of the public suffix list.
const DefaultListURL = "https://publicsuffix.org/list/public_suffix_list.dat"

const defaultTimeout = 10 * time.Second

// Option configures an FQDN manager. Please use WithXXX functions to generate Options.
type Option func(*options) error

type options struct {
	AllowPrivateTLDs bool          // include private-section rules in matching
	Timeout          time.Duration // bound on the list fetch
	SourceURL        string        // where to download the list from
	SourceFile       string        // local list file, takes precedence over SourceURL
	HTTPClient       *http.Client  // custom client for the fetch
	CacheExpireSec   int64         // extraction result cache TTL, 0 disables
}

func newOptions() *options {
	return &options{
		Timeout:   defaultTimeout,
		SourceURL: DefaultListURL,
	}
}

// WithAllowPrivateTLDs controls whether rules from the private section of
// the list (hosting platforms and the like) participate in matching.
// Disabled by default.
func WithAllowPrivateTLDs(allow bool) Option {
	return func(o *options) error {
		o.AllowPrivateTLDs = allow
		return nil
	}
}

func WithTimeout(t time.Duration) Option {
	return func(o *options) error {
		if t <= 0 {
			return errors.New("timeout must be positive")
		}
		o.Timeout = t
		return nil
	}
}

func WithSourceURL(rawURL string) Option {
	return func(o *options) error {
		u, err := url.Parse(rawURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("invalid source URL: " + rawURL)
		}
		o.SourceURL = rawURL
		return nil
	}
}

// WithSourceFile loads the list from a local file instead of the network.
func WithSourceFile(path string) Option {
	return func(o *options) error {
		o.SourceFile = path
		return nil
	}
}

func WithHTTPClient(cli *http.Client) Option {
	return func(o *options) error {
		o.HTTPClient = cli
		return nil
	}
}

func WithCacheExpireSec(sec int64) Option {
	return func(o *options) error {
		o.CacheExpireSec = sec
		return nil
	}
}

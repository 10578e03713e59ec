package gotld

import (
	"net"
	"net/url"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// splitHost reduces a URL or bare hostname to its lowercase hostname:
// scheme, port, path, query and the trailing dot are stripped. IP
// literals pass through unchanged.
func splitHost(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidURL
	}

	// a bare IP literal needs no URL surgery
	if net.ParseIP(s) != nil {
		return strings.ToLower(s), nil
	}

	host := s
	if strings.ContainsAny(s, "/?:@") {
		raw := s
		if !strings.Contains(raw, "://") {
			// Scheme-less input: parse as protocol-relative.
			raw = "//" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			return "", ErrInvalidURL
		}
		host = u.Hostname()
	}

	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return "", ErrInvalidURL
	}
	return host, nil
}

// NormalizeHost reduces a URL or bare hostname to a lowercase ASCII
// hostname suitable for matching, converting internationalized names
// via IDNA. IP literals are rejected, they have no registrable domain.
func NormalizeHost(s string) (string, error) {
	host, err := splitHost(s)
	if err != nil {
		return "", err
	}

	if net.ParseIP(host) != nil {
		return "", ErrInvalidURL
	}

	host, err = idna.Lookup.ToASCII(host)
	if err != nil {
		return "", ErrInvalidURL
	}

	if _, ok := dns.IsDomainName(host); !ok {
		return "", ErrInvalidURL
	}

	return host, nil
}

// hostLabels splits a normalized hostname into its labels, top-level
// label last. Empty labels mark a malformed host.
func hostLabels(host string) ([]string, error) {
	labels := strings.Split(host, ".")
	for _, l := range labels {
		if l == "" {
			return nil, ErrInvalidURL
		}
	}
	return labels, nil
}

package gotld

import (
	"net"

	"github.com/0990/gotld/pkg/util"
	"github.com/yl2chen/cidranger"
)

// ValidateOrigin reports whether the origin's registrable domain is in
// the allowed list. It never errors: unparsable origins, uninitialized
// state, and hosts without a registrable domain all resolve to false.
//
// An IP-literal origin is matched against allowed entries that parse as
// an IP or CIDR; hostname origins are matched by registrable domain.
func (f *FQDN) ValidateOrigin(origin string, allowed []string) bool {
	if len(allowed) == 0 {
		return false
	}

	host, err := splitHost(origin)
	if err != nil {
		return false
	}

	if ip := net.ParseIP(host); ip != nil {
		return ipAllowed(ip, allowed)
	}

	fqdn, err := f.GetFQDN(origin)
	if err != nil {
		return false
	}
	return util.IsInArray(fqdn, allowed)
}

func ipAllowed(ip net.IP, allowed []string) bool {
	ranger := cidranger.NewPCTrieRanger()

	inserted := false
	for _, a := range allowed {
		_, ipnet, err := net.ParseCIDR(a)
		if err != nil {
			// bare IP entries match as single-address networks
			switch getIPType(a) {
			case IPV4:
				a += "/32"
			case IPV6:
				a += "/128"
			default:
				continue
			}
			if _, ipnet, err = net.ParseCIDR(a); err != nil {
				continue
			}
		}
		if err := ranger.Insert(cidranger.NewBasicRangerEntry(*ipnet)); err == nil {
			inserted = true
		}
	}
	if !inserted {
		return false
	}

	ok, err := ranger.Contains(ip)
	if err != nil {
		return false
	}
	return ok
}

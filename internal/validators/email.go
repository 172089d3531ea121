package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address' domain resolves to either an
// MX or an A/AAAA record. It does live DNS lookups, so callers keep it
// behind a config switch.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

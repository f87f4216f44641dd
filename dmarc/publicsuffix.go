package dmarc

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// OrganizationalDomain returns the organizational domain for the given domain.
//
// The organizational domain is the domain directly under the public suffix.
// For example:
//   - example.com -> example.com
//   - sub.example.com -> example.com
//   - sub.example.co.uk -> example.co.uk
//
// RFC 7489 falls back to the organizational domain's record when a subdomain
// publishes none of its own. Lookup does not apply that fallback itself;
// this helper lets callers do it, or point out that a domain they queried is
// a subdomain.
func OrganizationalDomain(domain string) string {
	// Normalize: remove trailing dot and convert to lowercase
	domain = strings.TrimSuffix(strings.ToLower(domain), ".")

	if domain == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		// No derivable eTLD+1, e.g. "localhost" or a bare TLD.
		// Return the domain as-is.
		return domain
	}

	return etld1
}

// IsOrganizationalDomain returns true if the domain is an organizational
// domain (i.e., directly below the public suffix).
func IsOrganizationalDomain(domain string) bool {
	d := strings.TrimSuffix(strings.ToLower(domain), ".")
	return OrganizationalDomain(d) == d
}

// IsSubdomain returns true if domain is a subdomain of the given parent.
// Both domain.example.com and example.com return true for parent example.com.
func IsSubdomain(domain, parent string) bool {
	d := strings.TrimSuffix(strings.ToLower(domain), ".")
	p := strings.TrimSuffix(strings.ToLower(parent), ".")

	if d == p {
		return true
	}

	return strings.HasSuffix(d, "."+p)
}

// PublicSuffix returns the public suffix of the domain.
// For example, "co.uk" for "example.co.uk".
func PublicSuffix(domain string) string {
	d := strings.TrimSuffix(strings.ToLower(domain), ".")
	suffix, _ := publicsuffix.PublicSuffix(d)
	return suffix
}

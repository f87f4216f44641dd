// Package dns provides the DNS resolution interface used for DMARC lookups,
// with implementations backed by github.com/miekg/dns and by the standard
// library, plus a mock for tests.
package dns

import (
	"context"
	"errors"
	"strings"
)

// DNS lookup errors.
var (
	// ErrDNSNotFound indicates the name does not exist or carries no records
	// of the requested type (NXDOMAIN or an empty answer).
	ErrDNSNotFound = errors.New("dns: record not found")

	// ErrDNSServFail indicates the upstream resolver reported a failure
	// (SERVFAIL). A later attempt may succeed.
	ErrDNSServFail = errors.New("dns: server failure")

	// ErrDNSTimeout indicates the query timed out.
	ErrDNSTimeout = errors.New("dns: query timed out")

	// ErrDNSRefused indicates the server refused the query.
	ErrDNSRefused = errors.New("dns: query refused")
)

// Resolver performs DNS TXT lookups.
//
// A TXT record may be split into multiple character-string chunks on the
// wire. Implementations concatenate the chunks of each record, so callers
// always see one string per record.
type Resolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// IsNotFound reports whether the error indicates a missing name or record
// rather than a resolution failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDNSNotFound)
}

// IsTimeout reports whether the error indicates a query timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrDNSTimeout)
}

// IsServFail reports whether the error indicates an upstream server failure.
func IsServFail(err error) bool {
	return errors.Is(err, ErrDNSServFail)
}

// IsTemporary reports whether the error is likely to go away on retry.
func IsTemporary(err error) bool {
	return IsTimeout(err) || IsServFail(err)
}

// FQDN returns the name in absolute form, with a trailing dot.
func FQDN(name string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}

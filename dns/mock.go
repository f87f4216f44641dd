package dns

import (
	"context"
	"slices"
)

// MockResolver is a Resolver used for testing.
// TXT maps FQDNs (with trailing dot) to TXT record values.
type MockResolver struct {
	TXT map[string][]string

	// Fail contains FQDNs whose lookup returns a temporary error (SERVFAIL).
	Fail []string
}

var _ Resolver = MockResolver{}

// LookupTXT returns the configured TXT records for the given name.
func (r MockResolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fqdn := FQDN(name)
	if slices.Contains(r.Fail, fqdn) {
		return nil, ErrDNSServFail
	}

	records, ok := r.TXT[fqdn]
	if !ok || len(records) == 0 {
		return nil, ErrDNSNotFound
	}
	return records, nil
}

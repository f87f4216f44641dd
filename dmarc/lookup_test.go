package dmarc

import (
	"context"
	"errors"
	"testing"

	"github.com/mikepage/dmarc-validator/dns"
)

func TestCleanDomain(t *testing.T) {
	check := func(in, want string) {
		t.Helper()
		if got := CleanDomain(in); got != want {
			t.Errorf("CleanDomain(%q) = %q, want %q", in, got, want)
		}
	}

	check("example.com", "example.com")
	check("_dmarc.example.com", "example.com")
	check("http://example.com", "example.com")
	check("https://example.com", "example.com")
	check("https://example.com/", "example.com")
	check("https://example.com/path?q=1", "example.com")
	check("example.com/path/deeper", "example.com")
	check("sub.example.co.uk", "sub.example.co.uk")

	// Only a leading label is stripped; case is preserved.
	check("a._dmarc.example.com", "a._dmarc.example.com")
	check("Example.COM", "Example.COM")
}

func TestLookup(t *testing.T) {
	resolver := dns.MockResolver{
		TXT: map[string][]string{
			"_dmarc.example.com.": {
				"v=spf1 include:_spf.example.com ~all",
				"v=DMARC1; p=quarantine; rua=mailto:d@example.com",
			},
			"_dmarc.nopolicy.example.":  {"v=DMARC1; rua=mailto:d@example.com"},
			"_dmarc.mixedcase.example.": {"V=dmarc1; p=reject"},
			"_dmarc.other.example.":     {"some-verification=abc123"},
		},
		Fail: []string{"_dmarc.broken.example."},
	}
	ctx := context.Background()

	// The first TXT record starting with v=DMARC1 is selected, others are
	// ignored.
	result, err := Lookup(ctx, resolver, "example.com")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Domain != "example.com" {
		t.Errorf("Domain = %q, want %q", result.Domain, "example.com")
	}
	if result.Record != "v=DMARC1; p=quarantine; rua=mailto:d@example.com" {
		t.Errorf("Record = %q, expected the raw DMARC record", result.Record)
	}
	if result.Policy != PolicyQuarantine {
		t.Errorf("Policy = %q, want %q", result.Policy, PolicyQuarantine)
	}
	if result.PolicyDescription != PolicySummary(PolicyQuarantine) {
		t.Errorf("PolicyDescription = %q, expected the quarantine summary", result.PolicyDescription)
	}
	if len(result.Tags) != 3 || result.Tags[0].Tag != "v" || result.Tags[1].Tag != "p" || result.Tags[2].Tag != "rua" {
		t.Errorf("Tags = %#v, expected v, p, rua in order", result.Tags)
	}
	if result.QueryTime < 0 {
		t.Errorf("QueryTime = %d, want >= 0", result.QueryTime)
	}

	// A record without a p tag defaults the policy to none.
	result, err = Lookup(ctx, resolver, "nopolicy.example")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Policy != PolicyNone {
		t.Errorf("Policy = %q, want %q", result.Policy, PolicyNone)
	}
	if result.PolicyDescription != PolicySummary(PolicyNone) {
		t.Errorf("PolicyDescription = %q, expected the monitoring summary", result.PolicyDescription)
	}

	// Record selection is case-insensitive on the v=DMARC1 prefix.
	result, err = Lookup(ctx, resolver, "mixedcase.example")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Record != "V=dmarc1; p=reject" {
		t.Errorf("Record = %q, expected the mixed-case record", result.Record)
	}
	if result.Policy != PolicyReject {
		t.Errorf("Policy = %q, want %q", result.Policy, PolicyReject)
	}

	// The domain is normalized before querying.
	result, err = Lookup(ctx, resolver, "https://example.com/about")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Domain != "example.com" {
		t.Errorf("Domain = %q, want %q", result.Domain, "example.com")
	}
	if _, err := Lookup(ctx, resolver, "_dmarc.example.com"); err != nil {
		t.Errorf("Lookup(_dmarc.example.com) error = %v", err)
	}

	// TXT records exist but none is a DMARC record.
	if _, err := Lookup(ctx, resolver, "other.example"); !errors.Is(err, ErrNoRecord) {
		t.Errorf("Lookup(other.example) error = %v, want ErrNoRecord", err)
	}

	// No TXT records at all.
	if _, err := Lookup(ctx, resolver, "absent.example"); !errors.Is(err, ErrNoRecord) {
		t.Errorf("Lookup(absent.example) error = %v, want ErrNoRecord", err)
	}

	// Resolver failures surface as ErrDNS, not ErrNoRecord.
	_, err = Lookup(ctx, resolver, "broken.example")
	if !errors.Is(err, ErrDNS) {
		t.Errorf("Lookup(broken.example) error = %v, want ErrDNS", err)
	}
	if errors.Is(err, ErrNoRecord) {
		t.Errorf("Lookup(broken.example) error = %v, must not be ErrNoRecord", err)
	}

	// Cancellation propagates as a lookup error.
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Lookup(canceled, resolver, "example.com"); !errors.Is(err, ErrDNS) {
		t.Errorf("Lookup(canceled ctx) error = %v, want ErrDNS", err)
	}
}

func TestSelectRecord(t *testing.T) {
	check := func(records []string, want string, wantOK bool) {
		t.Helper()
		got, ok := selectRecord(records)
		if got != want || ok != wantOK {
			t.Errorf("selectRecord(%v) = %q, %v, want %q, %v", records, got, ok, want, wantOK)
		}
	}

	check(nil, "", false)
	check([]string{"v=spf1 -all"}, "", false)
	check([]string{"v=DMARC1; p=none"}, "v=DMARC1; p=none", true)
	check([]string{"other", "V=DMARC1;p=reject", "v=DMARC1; p=none"}, "V=DMARC1;p=reject", true)
	check([]string{"v=dmarc1"}, "v=dmarc1", true)
	check([]string{"v=dmarc"}, "", false) // prefix must be complete
}

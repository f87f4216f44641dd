package dmarc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikepage/dmarc-validator/dns"
)

// recordPrefix identifies a DMARC record among TXT answers, compared
// case-insensitively per RFC 7489 Section 6.6.3.
const recordPrefix = "v=dmarc1"

// CleanDomain normalizes a user-entered domain: a leading "_dmarc." label is
// stripped, then a leading "http://" or "https://" scheme, then everything
// from the first "/" onward. No case folding is applied.
func CleanDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "_dmarc.")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	if i := strings.Index(domain, "/"); i >= 0 {
		domain = domain[:i]
	}
	return domain
}

// Lookup retrieves and interprets the DMARC record for the given domain.
//
// The domain is normalized with CleanDomain and the TXT records of
// "_dmarc.<domain>" are queried through the resolver, once, with no retries.
// The first record whose text begins with "v=DMARC1" (case-insensitive) is
// interpreted: its tags in order of appearance, the effective policy (the
// first "p" tag's value, or "none" when absent) and the policy summary make
// up the Result, along with the query's duration.
//
// A missing record, either because the name has no TXT records or because
// none of them is a DMARC record, is reported as ErrNoRecord. Any other
// resolution failure is reported as an error wrapping ErrDNS.
func Lookup(ctx context.Context, resolver dns.Resolver, domain string) (*Result, error) {
	cleanDomain := CleanDomain(domain)
	name := dns.FQDN("_dmarc." + cleanDomain)

	start := time.Now()
	records, err := resolver.LookupTXT(ctx, name)
	queryTime := time.Since(start).Round(time.Millisecond).Milliseconds()

	if err != nil {
		if dns.IsNotFound(err) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("%w: %v", ErrDNS, err)
	}

	record, ok := selectRecord(records)
	if !ok {
		return nil, ErrNoRecord
	}

	tags := ParseTags(record)
	policy := policyValue(tags)

	return &Result{
		Domain:            cleanDomain,
		Record:            record,
		Tags:              tags,
		Policy:            policy,
		PolicyDescription: PolicySummary(policy),
		QueryTime:         queryTime,
	}, nil
}

// selectRecord returns the first TXT record that is a DMARC record.
func selectRecord(records []string) (string, bool) {
	for _, record := range records {
		if len(record) >= len(recordPrefix) && strings.EqualFold(record[:len(recordPrefix)], recordPrefix) {
			return record, true
		}
	}
	return "", false
}

// policyValue returns the value of the first "p" tag, or "none" when the
// record has none.
func policyValue(tags []Tag) string {
	for _, tag := range tags {
		if tag.Tag == "p" {
			return tag.Value
		}
	}
	return PolicyNone
}

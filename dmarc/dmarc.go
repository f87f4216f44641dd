package dmarc

import (
	"errors"
)

// DMARC lookup errors.
var (
	// ErrNoRecord indicates no DMARC DNS record was found: either the
	// "_dmarc" name has no TXT records, or none of them is a DMARC record.
	ErrNoRecord = errors.New("dmarc: no DMARC DNS record found")

	// ErrDNS indicates a DNS lookup error occurred.
	ErrDNS = errors.New("dmarc: DNS lookup error")
)

// Policies a domain can request for failing mail in the "p" and "sp" tags.
const (
	// PolicyNone requests no specific action be taken for failing messages.
	// This is typically used for monitoring/reporting during initial deployment.
	PolicyNone = "none"

	// PolicyQuarantine requests that failing messages be treated as suspicious.
	PolicyQuarantine = "quarantine"

	// PolicyReject requests that failing messages be rejected.
	PolicyReject = "reject"
)

// Tag is a single name=value component of a DMARC record, together with a
// human-readable description of its meaning.
type Tag struct {
	// Tag is the tag name, lower-cased (e.g. "p", "rua").
	Tag string `json:"tag"`

	// Value is the published tag value, trimmed but otherwise untouched.
	// Empty when the record segment had no "=".
	Value string `json:"value"`

	// Description is the human-readable interpretation of the tag.
	Description string `json:"description"`
}

// Result is the outcome of a successful DMARC lookup.
type Result struct {
	// Domain is the domain the record was queried for, after normalization
	// with CleanDomain.
	Domain string `json:"domain"`

	// Record is the raw DMARC TXT record as published.
	Record string `json:"record"`

	// Tags holds the record's tags in their order of appearance.
	Tags []Tag `json:"tags"`

	// Policy is the value of the record's first "p" tag, or "none" when the
	// record carries no "p" tag.
	Policy string `json:"policy"`

	// PolicyDescription is the summary sentence for Policy.
	PolicyDescription string `json:"policyDescription"`

	// QueryTime is the duration of the DNS query in milliseconds, rounded
	// to the nearest integer.
	QueryTime int64 `json:"queryTime"`
}

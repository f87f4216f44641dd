// Package dmarc resolves and interprets Domain-based Message Authentication,
// Reporting, and Conformance (DMARC) policies per RFC 7489.
//
// A domain publishes its DMARC policy in DNS as a TXT record under
// "_dmarc.<domain>". This package retrieves that record, splits it into its
// tags, and attaches a human-readable description to each tag so that the
// policy can be shown to people rather than evaluated by mail software.
//
// This package provides:
//   - DMARC record retrieval with pluggable DNS resolution
//   - Order-preserving tag parsing without validation
//   - Human-readable descriptions for all standard tags
//   - Policy summaries for the p tag value
//   - Organizational domain detection using the Public Suffix List
//   - JSON and MessagePack serialization of lookup results
//
// # Basic Usage
//
// Looking up and interpreting a DMARC policy:
//
//	resolver := dns.NewStdResolver()
//
//	result, err := dmarc.Lookup(ctx, resolver, "example.com")
//	if err != nil {
//	    // Handle error; errors.Is(err, dmarc.ErrNoRecord) means the domain
//	    // does not publish DMARC.
//	}
//
//	for _, tag := range result.Tags {
//	    fmt.Printf("%s=%s: %s\n", tag.Tag, tag.Value, tag.Description)
//	}
//
// # Parsing
//
// Records are interpreted, not validated. ParseTags preserves the order of
// appearance, keeps duplicate and unknown tags, and never rejects a record:
// whatever the domain published is what gets described. Records that violate
// RFC 7489 syntax still parse; their descriptions simply reflect the odd
// values.
//
// # Organizational Domain
//
// The organizational domain is determined using the Public Suffix List.
// For example:
//   - example.com has organizational domain example.com
//   - sub.example.com has organizational domain example.com
//   - sub.example.co.uk has organizational domain example.co.uk
//
// Lookup does not fall back to the organizational domain; callers that want
// the fallback can perform a second Lookup against OrganizationalDomain.
//
// # References
//
//   - RFC 7489: Domain-based Message Authentication, Reporting, and Conformance (DMARC)
package dmarc

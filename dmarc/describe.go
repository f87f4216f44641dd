package dmarc

import (
	"math"
	"strconv"
)

// tagDescribers maps the standard DMARC tag names (RFC 7489 Section 6.3) to
// functions rendering a description for a published value.
var tagDescribers = map[string]func(value string) string{
	"v":     describeVersion,
	"p":     describePolicy,
	"sp":    describeSubdomainPolicy,
	"rua":   describeAggregateURI,
	"ruf":   describeForensicURI,
	"pct":   describePercentage,
	"adkim": describeDKIMAlignment,
	"aspf":  describeSPFAlignment,
	"fo":    describeFailureOptions,
	"rf":    describeReportFormat,
	"ri":    describeReportInterval,
}

// describeTag returns the human-readable description for a tag. Tags outside
// the standard table are rendered as "<tag>: <value>".
func describeTag(tag, value string) string {
	if describe, ok := tagDescribers[tag]; ok {
		return describe(value)
	}
	return tag + ": " + value
}

// PolicySummary returns the summary sentence for a domain's effective policy,
// the value of the record's "p" tag. Values outside none, quarantine and
// reject summarize as "Unknown policy type.".
func PolicySummary(policy string) string {
	switch policy {
	case PolicyReject:
		return "This domain has the strongest DMARC protection: emails failing authentication are rejected outright."
	case PolicyQuarantine:
		return "This domain has moderate DMARC protection: emails failing authentication are quarantined (sent to spam)."
	case PolicyNone:
		return "This domain is in monitoring mode: emails failing authentication are delivered normally but reported."
	default:
		return "Unknown policy type."
	}
}

func describeVersion(value string) string {
	return "DMARC version: " + value
}

func describePolicy(value string) string {
	switch value {
	case PolicyNone:
		return "No action taken on failing emails, monitoring only"
	case PolicyQuarantine:
		return "Failing emails should be quarantined (marked as spam)"
	case PolicyReject:
		return "Failing emails should be rejected outright"
	default:
		return "Policy: " + value
	}
}

func describeSubdomainPolicy(value string) string {
	switch value {
	case PolicyNone:
		return "No action taken on failing subdomain emails, monitoring only"
	case PolicyQuarantine:
		return "Failing subdomain emails should be quarantined (marked as spam)"
	case PolicyReject:
		return "Failing subdomain emails should be rejected outright"
	default:
		return "Subdomain policy: " + value
	}
}

func describeAggregateURI(value string) string {
	return "Aggregate reports sent to: " + value
}

func describeForensicURI(value string) string {
	return "Forensic reports sent to: " + value
}

func describePercentage(value string) string {
	return "Policy applies to " + value + "% of failing emails"
}

// Alignment values other than "s" read as relaxed, the RFC default.
func describeDKIMAlignment(value string) string {
	if value == "s" {
		return "DKIM alignment: strict - the DKIM signature domain must exactly match the From domain"
	}
	return "DKIM alignment: relaxed - the DKIM signature domain may be a subdomain of the From domain"
}

func describeSPFAlignment(value string) string {
	if value == "s" {
		return "SPF alignment: strict - the SPF domain must exactly match the From domain"
	}
	return "SPF alignment: relaxed - the SPF domain may be a subdomain of the From domain"
}

func describeFailureOptions(value string) string {
	switch value {
	case "0":
		return "Failure reports generated if all authentication mechanisms fail"
	case "1":
		return "Failure reports generated if any authentication mechanism fails"
	case "d":
		return "Failure reports generated if DKIM validation fails"
	case "s":
		return "Failure reports generated if SPF validation fails"
	default:
		return "Failure reporting: " + value
	}
}

func describeReportFormat(value string) string {
	return "Report format: " + value
}

// describeReportInterval renders the "ri" tag. The hour component is the
// published value divided by 3600 and rounded; a non-numeric value yields
// "NaN" there while the seconds component still shows the value as published.
func describeReportInterval(value string) string {
	return "Report interval: " + value + " seconds (" + intervalHours(value) + " hours)"
}

func intervalHours(value string) string {
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		seconds = math.NaN()
	}
	return strconv.FormatFloat(math.Round(seconds/3600), 'f', -1, 64)
}

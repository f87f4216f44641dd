package dmarc

import (
	"strings"
	"testing"
)

// FuzzParseTags fuzzes the tag parser with arbitrary record strings.
func FuzzParseTags(f *testing.F) {
	seeds := []string{
		"v=DMARC1; p=reject",
		"v=DMARC1; p=quarantine; rua=mailto:agg@example.com; pct=50",
		"v=DMARC1; p=none; sp=reject; adkim=s; aspf=r; fo=1; rf=afrf; ri=86400",
		// Edge cases
		"",
		";",
		";;;",
		"p",
		"p=",
		"=",
		"=value",
		"  v  =  DMARC1  ;  ",
		"rua=mailto:a@x.com!10m,mailto:b@y.com",
		"P=REJECT; P=none",
		// Malformed
		"v=DMARC1\x00p=reject",
		"p=\xff\xfe",
		strings.Repeat(";", 1000),
		"v=" + strings.Repeat("a", 5000),
		"UTF-8: αβγδ=тест",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, record string) {
		tags := ParseTags(record)

		// The parser must never return nil and never produce more tags
		// than there are segments.
		if tags == nil {
			t.Fatal("ParseTags() returned nil")
		}
		if max := strings.Count(record, ";") + 1; len(tags) > max {
			t.Fatalf("ParseTags() returned %d tags from %d segments", len(tags), max)
		}

		for _, tag := range tags {
			if tag.Tag != strings.TrimSpace(tag.Tag) {
				t.Errorf("tag name %q not trimmed", tag.Tag)
			}
			if tag.Tag != strings.ToLower(tag.Tag) {
				t.Errorf("tag name %q not lowercased", tag.Tag)
			}
			if tag.Description == "" {
				t.Errorf("tag %q has no description", tag.Tag)
			}
		}
	})
}

// FuzzCleanDomain fuzzes domain normalization with arbitrary input.
func FuzzCleanDomain(f *testing.F) {
	seeds := []string{
		"example.com",
		"_dmarc.example.com",
		"https://example.com/path",
		"http://example.com",
		"example.com/a/b/c",
		"",
		"/",
		"_dmarc.",
		"https://",
		"_dmarc.https://example.com/x",
		"xn--nxasmq6b.example",
		strings.Repeat("a.", 200),
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, domain string) {
		clean := CleanDomain(domain)
		if strings.Contains(clean, "/") {
			t.Errorf("CleanDomain(%q) = %q, contains a path separator", domain, clean)
		}
	})
}

// FuzzFromMessagePack fuzzes the binary decoder with arbitrary bytes.
func FuzzFromMessagePack(f *testing.F) {
	valid, err := (&Result{
		Domain:            "example.com",
		Record:            "v=DMARC1; p=reject",
		Tags:              ParseTags("v=DMARC1; p=reject"),
		Policy:            "reject",
		PolicyDescription: PolicySummary("reject"),
		QueryTime:         12,
	}).ToMessagePack()
	if err != nil {
		f.Fatalf("ToMessagePack() error = %v", err)
	}

	f.Add(valid)
	f.Add(valid[:len(valid)/2])
	f.Add([]byte{})
	f.Add([]byte{0x80})
	f.Add([]byte{0xde, 0xff, 0xff})
	f.Add([]byte("not msgpack at all"))

	f.Fuzz(func(t *testing.T, data []byte) {
		result, err := FromMessagePack(data)
		if err != nil {
			return
		}
		// A successful decode must uphold the same invariants as Lookup.
		if result == nil {
			t.Fatal("FromMessagePack() returned nil result without error")
		}
		if result.Tags == nil {
			t.Error("decoded result has nil tags")
		}
	})
}

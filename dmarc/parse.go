package dmarc

import (
	"strings"
)

// ParseTags splits a raw DMARC record into its tags, in order of appearance.
//
// The record is split on ";". Each segment is trimmed of surrounding
// whitespace; segments that are empty after trimming are dropped. A segment
// is split on its first "=" into the tag name (trimmed, lower-cased) and the
// value (trimmed, case preserved); a segment without "=" yields an empty
// value. Duplicate tags are kept in sequence, not collapsed.
//
// No validation is performed: unknown tags, out-of-range values and missing
// required tags all parse. Each tag gets a Description; tags outside the
// standard set are described as "<tag>: <value>".
func ParseTags(record string) []Tag {
	segments := strings.Split(record, ";")
	tags := make([]Tag, 0, len(segments))

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, value, _ := strings.Cut(segment, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)

		tags = append(tags, Tag{
			Tag:         name,
			Value:       value,
			Description: describeTag(name, value),
		})
	}

	return tags
}

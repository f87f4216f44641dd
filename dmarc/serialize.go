package dmarc

import (
	"encoding/json"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// ToJSON serializes the Result to JSON bytes.
func (r *Result) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ToJSONIndent serializes the Result to indented JSON bytes, for display.
func (r *Result) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FromJSON deserializes a Result from JSON bytes.
func FromJSON(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("dmarc: decoding JSON result: %w", err)
	}
	return &r, nil
}

// ToMessagePack serializes the Result to MessagePack bytes. Field names match
// the JSON field names, so both encodings describe the same document.
func (r *Result) ToMessagePack() ([]byte, error) {
	b := make([]byte, 0, 128+len(r.Record))

	b = msgp.AppendMapHeader(b, 6)
	b = msgp.AppendString(b, "domain")
	b = msgp.AppendString(b, r.Domain)
	b = msgp.AppendString(b, "record")
	b = msgp.AppendString(b, r.Record)
	b = msgp.AppendString(b, "tags")
	b = msgp.AppendArrayHeader(b, uint32(len(r.Tags)))
	for _, tag := range r.Tags {
		b = msgp.AppendMapHeader(b, 3)
		b = msgp.AppendString(b, "tag")
		b = msgp.AppendString(b, tag.Tag)
		b = msgp.AppendString(b, "value")
		b = msgp.AppendString(b, tag.Value)
		b = msgp.AppendString(b, "description")
		b = msgp.AppendString(b, tag.Description)
	}
	b = msgp.AppendString(b, "policy")
	b = msgp.AppendString(b, r.Policy)
	b = msgp.AppendString(b, "policyDescription")
	b = msgp.AppendString(b, r.PolicyDescription)
	b = msgp.AppendString(b, "queryTime")
	b = msgp.AppendInt64(b, r.QueryTime)

	return b, nil
}

// FromMessagePack deserializes a Result from MessagePack bytes.
// Unknown fields are skipped.
func FromMessagePack(data []byte) (*Result, error) {
	size, data, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return nil, fmt.Errorf("dmarc: decoding msgpack result: %w", err)
	}

	var r Result
	r.Tags = []Tag{}

	for i := uint32(0); i < size; i++ {
		var key []byte
		key, data, err = msgp.ReadMapKeyZC(data)
		if err != nil {
			return nil, fmt.Errorf("dmarc: decoding msgpack key: %w", err)
		}

		switch string(key) {
		case "domain":
			r.Domain, data, err = msgp.ReadStringBytes(data)
		case "record":
			r.Record, data, err = msgp.ReadStringBytes(data)
		case "tags":
			var count uint32
			count, data, err = msgp.ReadArrayHeaderBytes(data)
			if err != nil {
				break
			}
			r.Tags = make([]Tag, 0, count)
			for j := uint32(0); j < count; j++ {
				var tag Tag
				tag, data, err = readTagBytes(data)
				if err != nil {
					break
				}
				r.Tags = append(r.Tags, tag)
			}
		case "policy":
			r.Policy, data, err = msgp.ReadStringBytes(data)
		case "policyDescription":
			r.PolicyDescription, data, err = msgp.ReadStringBytes(data)
		case "queryTime":
			r.QueryTime, data, err = msgp.ReadInt64Bytes(data)
		default:
			data, err = msgp.Skip(data)
		}
		if err != nil {
			return nil, fmt.Errorf("dmarc: decoding msgpack field %q: %w", key, err)
		}
	}

	return &r, nil
}

// readTagBytes decodes a single Tag map.
func readTagBytes(data []byte) (Tag, []byte, error) {
	size, data, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return Tag{}, data, err
	}

	var tag Tag
	for i := uint32(0); i < size; i++ {
		var key []byte
		key, data, err = msgp.ReadMapKeyZC(data)
		if err != nil {
			return tag, data, err
		}

		switch string(key) {
		case "tag":
			tag.Tag, data, err = msgp.ReadStringBytes(data)
		case "value":
			tag.Value, data, err = msgp.ReadStringBytes(data)
		case "description":
			tag.Description, data, err = msgp.ReadStringBytes(data)
		default:
			data, err = msgp.Skip(data)
		}
		if err != nil {
			return tag, data, err
		}
	}

	return tag, data, nil
}

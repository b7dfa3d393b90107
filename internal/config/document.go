package config

import (
	"encoding/json"
	"fmt"
)

// Defaults written on a fresh install.
const (
	DefaultDomain = "test"
	DefaultPort   = "80"
)

// Document represents the persisted configuration object.
//
// Domain, Port and Paths are the keys parka understands. Every other
// top-level key is carried in Extra as raw JSON so the document
// round-trips without losing data written by newer versions or external
// tooling.
type Document struct {
	Domain string
	Port   string
	Paths  []string
	Extra  map[string]json.RawMessage
}

// NewDocument creates a Document with default values
func NewDocument() *Document {
	return &Document{
		Domain: DefaultDomain,
		Port:   DefaultPort,
		Paths:  []string{},
		Extra:  make(map[string]json.RawMessage),
	}
}

// MarshalJSON flattens known fields and Extra into a single object.
// Key order is the serializer's map ordering (sorted), which keeps the
// on-disk form stable across rewrites.
func (d *Document) MarshalJSON() ([]byte, error) {
	object := make(map[string]interface{}, len(d.Extra)+3)
	for key, raw := range d.Extra {
		object[key] = raw
	}

	paths := d.Paths
	if paths == nil {
		paths = []string{}
	}
	object["domain"] = d.Domain
	object["port"] = d.Port
	object["paths"] = paths

	return json.Marshal(object)
}

// UnmarshalJSON decodes a top-level JSON object, routing known keys into
// typed fields and everything else into Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("top-level value is not an object")
	}

	doc := Document{
		Paths: []string{},
		Extra: make(map[string]json.RawMessage),
	}
	for key, value := range raw {
		switch key {
		case "domain":
			if err := json.Unmarshal(value, &doc.Domain); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
		case "port":
			if err := json.Unmarshal(value, &doc.Port); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
		case "paths":
			if err := json.Unmarshal(value, &doc.Paths); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			if doc.Paths == nil {
				doc.Paths = []string{}
			}
		default:
			doc.Extra[key] = value
		}
	}

	*d = doc
	return nil
}

// Get returns the value for key and whether the key is present.
// Known keys return their typed values; Extra keys are decoded into
// generic JSON values.
func (d *Document) Get(key string) (interface{}, bool) {
	switch key {
	case "domain":
		return d.Domain, true
	case "port":
		return d.Port, true
	case "paths":
		return d.Paths, true
	}

	raw, ok := d.Extra[key]
	if !ok {
		return nil, false
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}
	return value, true
}

// Set assigns value to key. Known keys enforce their types; any other
// key accepts any JSON-encodable value.
func (d *Document) Set(key string, value interface{}) error {
	switch key {
	case "domain":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("domain must be a string, got %T", value)
		}
		d.Domain = s
	case "port":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("port must be a string, got %T", value)
		}
		d.Port = s
	case "paths":
		paths, err := toStringSlice(value)
		if err != nil {
			return fmt.Errorf("paths must be a list of strings: %w", err)
		}
		d.Paths = paths
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("value for key %q is not JSON-encodable: %w", key, err)
		}
		if d.Extra == nil {
			d.Extra = make(map[string]json.RawMessage)
		}
		d.Extra[key] = raw
	}
	return nil
}

// toStringSlice accepts []string directly or []interface{} of strings
// (the shape a decoded JSON array arrives in).
func toStringSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %v is %T, not string", item, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("got %T", value)
	}
}

// unique collapses duplicate entries, keeping the first occurrence of
// each value and the order of first occurrences.
func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

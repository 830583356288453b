package imds

import (
	"strings"
)

// Sentinel replaces empty strings everywhere in a normalized Document.
const Sentinel = "N/A"

// Document is a decoded instance metadata response.
type Document map[string]any

// Lookup walks a dotted path through nested objects.
func (d Document) Lookup(path string) (any, bool) {
	return getValue(d, path)
}

// Has reports whether the final key of path exists, regardless of its value.
func (d Document) Has(path string) bool {
	_, ok := getValue(d, path)
	return ok
}

// Value returns the value at path or the Sentinel when it is absent.
func (d Document) Value(path string) any {
	value, ok := getValue(d, path)
	if !ok || value == nil {
		return Sentinel
	}
	return value
}

// Map returns the object at path. A missing or non-object value yields an empty map.
func (d Document) Map(path string) map[string]any {
	value, ok := getValue(d, path)
	if !ok {
		return map[string]any{}
	}
	asMap, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return asMap
}

// Slice returns the sequence at path, or nil when it is absent or not a sequence.
func (d Document) Slice(path string) []any {
	value, ok := getValue(d, path)
	if !ok {
		return nil
	}
	items, _ := value.([]any)
	return items
}

// ValueOf reads key from an arbitrary object, defaulting to the Sentinel.
func ValueOf(raw map[string]any, key string) any {
	value, ok := getValue(raw, key)
	if !ok || value == nil {
		return Sentinel
	}
	return value
}

// FieldOf reads the literal key from raw without path splitting, defaulting to
// the Sentinel. Use it when iterating the keys of an object.
func FieldOf(raw map[string]any, key string) any {
	value, ok := raw[key]
	if !ok || value == nil {
		return Sentinel
	}
	return value
}

func getValue(raw map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var current any = raw
	for _, part := range parts {
		asMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = asMap[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Package document provides defensive access to untyped specification trees.
//
// A parsed document is an arbitrary tree of mappings, sequences, scalars and
// nulls; any node may be any of these regardless of position. Every accessor
// here is total: a node of the wrong shape yields the default, never a panic.
package document

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Parse decodes raw file bytes into an untyped tree. The grammar is YAML,
// which is a superset of JSON, so both corpus formats go through here.
//
// A nil return with a nil error means the document was empty.
func Parse(content []byte) (any, error) {
	var root any
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return root, nil
}

// Mapping reports node as a string-keyed mapping, or (nil, false) for any
// other shape. yaml.v3 decodes a mapping with at least one non-string key as
// map[any]any; those keys are stringified so that a document mixing
// `200:` and `"404":` response codes still traverses.
func Mapping(node any) (map[string]any, bool) {
	switch m := node.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[Text(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// Get returns node[key] when node is a mapping and the key is present,
// otherwise def. It never panics, whatever shape node actually has.
func Get(node any, key string, def any) any {
	m, ok := Mapping(node)
	if !ok {
		return def
	}
	v, ok := m[key]
	if !ok {
		return def
	}
	return v
}

// Sequence reports node as a sequence, or (nil, false) for any other shape.
func Sequence(node any) ([]any, bool) {
	s, ok := node.([]any)
	return s, ok
}

// Keys returns the sorted keys of a mapping node. Non-mapping nodes yield nil.
// Sorting fixes an iteration order; Go maps and YAML mappings carry none.
func Keys(node any) []string {
	m, ok := Mapping(node)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text stringifies a scalar node. Nil yields the empty string; strings pass
// through; every other shape is formatted with the default %v verb.
func Text(node any) string {
	switch v := node.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Package extract mines training records from untyped specification trees.
//
// Each extractor targets one record family and assumes nothing about the
// tree's shape: all field access goes through package document, so a
// malformed node reads as absent rather than failing the file.
package extract

import (
	"fmt"

	"github.com/specminer/core/pkg/domain"
)

// Capability names one extractor family that can be enabled for a run.
type Capability string

// Available extractor capabilities.
const (
	CapOperations Capability = "operations"
	CapExamples   Capability = "examples"
	CapSchemas    Capability = "schemas"
)

// Extractor mines records of one family from a parsed document root.
type Extractor interface {
	// Name identifies the capability this extractor implements.
	Name() Capability

	// Extract returns the records reachable in root. sourceFile is the
	// provenance recorded on each record. Extraction is deterministic:
	// the same root yields the same records in the same order.
	Extract(root any, sourceFile string) []domain.Record
}

// canonical fixes the order extractors run in, independent of the order
// capabilities were requested. Record order within a file depends on it.
var canonical = []Capability{CapOperations, CapExamples, CapSchemas}

// ParseCapabilities validates a list of capability names. An empty list
// enables every extractor. Unknown names are an error.
func ParseCapabilities(names []string) ([]Capability, error) {
	if len(names) == 0 {
		return append([]Capability(nil), canonical...), nil
	}
	seen := make(map[Capability]bool, len(names))
	for _, name := range names {
		c := Capability(name)
		switch c {
		case CapOperations, CapExamples, CapSchemas:
			seen[c] = true
		default:
			return nil, fmt.Errorf("unknown extractor %q (known: operations, examples, schemas)", name)
		}
	}
	caps := make([]Capability, 0, len(seen))
	for _, c := range canonical {
		if seen[c] {
			caps = append(caps, c)
		}
	}
	return caps, nil
}

// ForCapabilities returns the extractors for a capability set in canonical
// order. Duplicates collapse; an empty set yields every extractor.
func ForCapabilities(caps []Capability) []Extractor {
	if len(caps) == 0 {
		caps = canonical
	}
	enabled := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		enabled[c] = true
	}
	var extractors []Extractor
	for _, c := range canonical {
		if !enabled[c] {
			continue
		}
		switch c {
		case CapOperations:
			extractors = append(extractors, &OperationExtractor{})
		case CapExamples:
			extractors = append(extractors, &ExampleExtractor{})
		case CapSchemas:
			extractors = append(extractors, &SchemaExtractor{})
		}
	}
	return extractors
}

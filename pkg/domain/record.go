// Package domain defines the core types for mined training records.
package domain

// RecordType identifies the record family a training example was mined from.
type RecordType string

// Record types aligned with the downstream fine-tuning contract.
const (
	// TypeOperationDescription is a record mined from an HTTP operation's description.
	TypeOperationDescription RecordType = "operation_description"
	// TypeExampleDescription is a record mined from a named example carrying both
	// a summary and a description.
	TypeExampleDescription RecordType = "example_description"
	// TypeExampleSummary is a record mined from a named example carrying only a summary.
	TypeExampleSummary RecordType = "example_summary"
	// TypeSchemaDescription is a record mined from a component schema's description.
	TypeSchemaDescription RecordType = "schema_description"
)

// Record is one mined (context, label) training example with provenance.
//
// InputText and TargetText are a fixed contract with the downstream
// fine-tuning consumer; the field names must never change.
type Record struct {
	// SourceFile is the base name of the file the record was mined from.
	SourceFile string `json:"source_file"`
	// Type is the record family.
	Type RecordType `json:"type"`
	// InputText is the canonical context string.
	InputText string `json:"input_text"`
	// TargetText is the cleaned natural-language label. Always non-empty.
	TargetText string `json:"target_text"`
}

// TypeBreakdown counts records per type.
func TypeBreakdown(records []Record) map[RecordType]int {
	counts := make(map[RecordType]int)
	for _, r := range records {
		counts[r.Type]++
	}
	return counts
}

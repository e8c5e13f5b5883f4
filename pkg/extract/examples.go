package extract

import (
	"fmt"

	"github.com/specminer/core/pkg/document"
	"github.com/specminer/core/pkg/domain"
)

// maxValueChars bounds the stringified example value embedded in the context.
const maxValueChars = 200

// ExampleExtractor mines named examples from components.examples.
type ExampleExtractor struct{}

func (e *ExampleExtractor) Name() Capability { return CapExamples }

// Extract emits example_description for entries with both a summary and a
// description, example_summary for entries with only a summary, and nothing
// otherwise.
func (e *ExampleExtractor) Extract(root any, sourceFile string) []domain.Record {
	var records []domain.Record

	examples := document.Get(document.Get(root, "components", nil), "examples", nil)
	for _, name := range document.Keys(examples) {
		entry := document.Get(examples, name, nil)
		if _, ok := document.Mapping(entry); !ok {
			continue
		}

		summary := document.Text(document.Get(entry, "summary", ""))
		desc := document.Text(document.Get(entry, "description", ""))

		switch {
		case desc != "" && summary != "":
			target := Clean(desc)
			if target == "" {
				continue
			}
			records = append(records, domain.Record{
				SourceFile: sourceFile,
				Type:       domain.TypeExampleDescription,
				InputText: fmt.Sprintf("Example: %s | Summary: %s | Data: %s",
					name, summary, exampleValue(entry)),
				TargetText: target,
			})
		case summary != "" && desc == "":
			target := Clean(summary)
			if target == "" {
				continue
			}
			records = append(records, domain.Record{
				SourceFile: sourceFile,
				Type:       domain.TypeExampleSummary,
				InputText:  fmt.Sprintf("Example: %s | Data: %s", name, exampleValue(entry)),
				TargetText: target,
			})
		}
	}

	return records
}

// exampleValue stringifies an example's value node, truncated to
// maxValueChars characters. Truncation counts runes so a multi-byte
// character is never split.
func exampleValue(entry any) string {
	s := document.Text(document.Get(entry, "value", ""))
	runes := []rune(s)
	if len(runes) > maxValueChars {
		return string(runes[:maxValueChars])
	}
	return s
}

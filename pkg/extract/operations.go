package extract

import (
	"fmt"
	"strings"

	"github.com/specminer/core/pkg/document"
	"github.com/specminer/core/pkg/domain"
)

// minOperationTokens is the exclusive lower bound on cleaned description
// length. Filters boilerplate like "Returns 200 OK".
const minOperationTokens = 5

// pathItemFields are the shared path-level keys that are never HTTP methods,
// whatever shape their value has.
var pathItemFields = map[string]bool{
	"summary":     true,
	"description": true,
	"parameters":  true,
	"servers":     true,
	"$ref":        true,
}

// OperationExtractor mines operation descriptions from the paths object.
type OperationExtractor struct{}

func (e *OperationExtractor) Name() Capability { return CapOperations }

// Extract walks paths → path item → operations. A path item key is treated
// as an HTTP method when it is not a reserved field and its value is a
// mapping; anything else is skipped without error.
func (e *OperationExtractor) Extract(root any, sourceFile string) []domain.Record {
	var records []domain.Record

	paths := document.Get(root, "paths", nil)
	for _, path := range document.Keys(paths) {
		pathItem := document.Get(paths, path, nil)
		if _, ok := document.Mapping(pathItem); !ok {
			continue
		}

		for _, method := range document.Keys(pathItem) {
			if pathItemFields[method] {
				continue
			}
			op := document.Get(pathItem, method, nil)
			if _, ok := document.Mapping(op); !ok {
				continue
			}

			desc := Clean(document.Text(document.Get(op, "description", nil)))
			if TokenCount(desc) <= minOperationTokens {
				continue
			}

			summary := document.Text(document.Get(op, "summary", ""))
			records = append(records, domain.Record{
				SourceFile: sourceFile,
				Type:       domain.TypeOperationDescription,
				InputText: fmt.Sprintf("Method: %s | Path: %s | Summary: %s | Tags: %s",
					strings.ToUpper(method), path, summary, joinTags(document.Get(op, "tags", nil))),
				TargetText: desc,
			})
		}
	}

	return records
}

// joinTags renders a tags node as a comma-joined string. A non-sequence tags
// value renders empty, same as absent.
func joinTags(node any) string {
	seq, ok := document.Sequence(node)
	if !ok {
		return ""
	}
	tags := make([]string, 0, len(seq))
	for _, t := range seq {
		tags = append(tags, document.Text(t))
	}
	return strings.Join(tags, ", ")
}

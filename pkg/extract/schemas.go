package extract

import (
	"fmt"
	"strings"

	"github.com/specminer/core/pkg/document"
	"github.com/specminer/core/pkg/domain"
)

// minSchemaTokens is the exclusive lower bound on cleaned schema description
// length. Schema one-liners carry less boilerplate than operations, so the
// bar is lower.
const minSchemaTokens = 3

// SchemaExtractor mines schema descriptions from components.schemas.
type SchemaExtractor struct{}

func (e *SchemaExtractor) Name() Capability { return CapSchemas }

// Extract emits one schema_description per schema whose cleaned description
// exceeds the token threshold. The context lists the schema's property
// names; a schema without a properties mapping lists none.
func (e *SchemaExtractor) Extract(root any, sourceFile string) []domain.Record {
	var records []domain.Record

	schemas := document.Get(document.Get(root, "components", nil), "schemas", nil)
	for _, name := range document.Keys(schemas) {
		entry := document.Get(schemas, name, nil)
		if _, ok := document.Mapping(entry); !ok {
			continue
		}

		desc := Clean(document.Text(document.Get(entry, "description", nil)))
		if TokenCount(desc) <= minSchemaTokens {
			continue
		}

		fields := document.Keys(document.Get(entry, "properties", nil))
		records = append(records, domain.Record{
			SourceFile: sourceFile,
			Type:       domain.TypeSchemaDescription,
			InputText:  fmt.Sprintf("Schema: %s | Fields: %s", name, strings.Join(fields, ", ")),
			TargetText: desc,
		})
	}

	return records
}

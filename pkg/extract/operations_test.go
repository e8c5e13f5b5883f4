package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specminer/core/pkg/document"
	"github.com/specminer/core/pkg/domain"
)

func parseDoc(t *testing.T, content string) any {
	t.Helper()
	root, err := document.Parse([]byte(content))
	require.NoError(t, err)
	return root
}

func TestOperationExtractor(t *testing.T) {
	ex := &OperationExtractor{}

	t.Run("should mine a complete operation", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /users:
    get:
      summary: Get users
      description: Returns a list of users available in the system for pagination
      tags: [users]
`)
		records := ex.Extract(root, "pets.yaml")
		require.Len(t, records, 1)

		assert.Equal(t, domain.Record{
			SourceFile: "pets.yaml",
			Type:       domain.TypeOperationDescription,
			InputText:  "Method: GET | Path: /users | Summary: Get users | Tags: users",
			TargetText: "Returns a list of users available in the system for pagination",
		}, records[0])
	})

	t.Run("should drop descriptions of five tokens or fewer", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /health:
    get:
      summary: Health
      description: Returns 200 OK on success
`)
		assert.Empty(t, ex.Extract(root, "health.yaml"))
	})

	t.Run("should never treat reserved path-item keys as methods", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /users:
    summary: Shared summary
    description: This mapping-shaped description with many tokens must not become an operation
    parameters:
      description: This mapping-shaped parameter value with many tokens must not become an operation
    servers:
      description: This mapping-shaped server value with many tokens must not become an operation
    $ref: '#/components/pathItems/users'
`)
		assert.Empty(t, ex.Extract(root, "reserved.yaml"))
	})

	t.Run("should skip non-mapping path items and operations", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /scalar: just text
  /listed:
    - item
  /users:
    get: not a mapping either
    post:
      description: Creates a user record and returns the stored representation to the caller
`)
		records := ex.Extract(root, "shapes.yaml")
		require.Len(t, records, 1)
		assert.Equal(t, "Method: POST | Path: /users | Summary:  | Tags: ", records[0].InputText)
	})

	t.Run("should render non-sequence tags as empty", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /users:
    get:
      summary: Get users
      description: Returns a list of users available in the system for pagination
      tags: users
`)
		records := ex.Extract(root, "tags.yaml")
		require.Len(t, records, 1)
		assert.Equal(t, "Method: GET | Path: /users | Summary: Get users | Tags: ", records[0].InputText)
	})

	t.Run("should join multiple tags with comma", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /users:
    delete:
      summary: Remove user
      description: Deletes the user account and every resource the account still owns
      tags: [users, admin]
`)
		records := ex.Extract(root, "multi.yaml")
		require.Len(t, records, 1)
		assert.Equal(t, "Method: DELETE | Path: /users | Summary: Remove user | Tags: users, admin", records[0].InputText)
	})

	t.Run("should clean markup out of the target", func(t *testing.T) {
		root := parseDoc(t, "paths:\n  /users:\n    get:\n      description: \"<p>Returns a list of\\nusers available for   pagination</p>\"\n")
		records := ex.Extract(root, "markup.yaml")
		require.Len(t, records, 1)
		assert.Equal(t, "Returns a list of users available for pagination", records[0].TargetText)
	})

	t.Run("should yield nothing without a paths mapping", func(t *testing.T) {
		assert.Empty(t, ex.Extract(parseDoc(t, "info:\n  title: No paths\n"), "a.yaml"))
		assert.Empty(t, ex.Extract(parseDoc(t, "paths: not a mapping\n"), "b.yaml"))
		assert.Empty(t, ex.Extract(nil, "c.yaml"))
	})

	t.Run("should order records by path then method", func(t *testing.T) {
		root := parseDoc(t, `
paths:
  /b:
    get:
      description: Second path operation description with more than five whitespace tokens
  /a:
    post:
      description: First path operation description with more than five whitespace tokens
    get:
      description: Another first path operation description with more than five tokens
`)
		records := ex.Extract(root, "order.yaml")
		require.Len(t, records, 3)
		assert.Contains(t, records[0].InputText, "Method: GET | Path: /a")
		assert.Contains(t, records[1].InputText, "Method: POST | Path: /a")
		assert.Contains(t, records[2].InputText, "Method: GET | Path: /b")
	})
}

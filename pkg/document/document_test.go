package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specminer/core/pkg/document"
)

func TestParse(t *testing.T) {
	t.Run("should parse yaml mapping", func(t *testing.T) {
		root, err := document.Parse([]byte("openapi: 3.0.0\ninfo:\n  title: Pets\n"))
		require.NoError(t, err)

		m, ok := document.Mapping(root)
		require.True(t, ok)
		assert.Equal(t, "3.0.0", m["openapi"])
	})

	t.Run("should parse json as yaml superset", func(t *testing.T) {
		root, err := document.Parse([]byte(`{"openapi": "3.0.0", "paths": {}}`))
		require.NoError(t, err)

		assert.Equal(t, "3.0.0", document.Get(root, "openapi", nil))
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := document.Parse([]byte("key: [unclosed\n  nested: {bad"))
		assert.Error(t, err)
	})

	t.Run("should yield nil for empty input", func(t *testing.T) {
		root, err := document.Parse(nil)
		require.NoError(t, err)
		assert.Nil(t, root)
	})

	t.Run("should parse non-mapping roots without error", func(t *testing.T) {
		for _, content := range []string{"- a\n- b\n", "just a scalar\n", "42\n"} {
			root, err := document.Parse([]byte(content))
			require.NoError(t, err)

			_, ok := document.Mapping(root)
			assert.False(t, ok, "root of %q should not be a mapping", content)
		}
	})
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		node any
		key  string
		def  any
		want any
	}{
		{
			name: "present key",
			node: map[string]any{"summary": "Get users"},
			key:  "summary",
			def:  nil,
			want: "Get users",
		},
		{
			name: "absent key returns default",
			node: map[string]any{"summary": "Get users"},
			key:  "description",
			def:  "fallback",
			want: "fallback",
		},
		{
			name: "nil node returns default",
			node: nil,
			key:  "summary",
			def:  "fallback",
			want: "fallback",
		},
		{
			name: "scalar node returns default",
			node: "not a mapping",
			key:  "summary",
			def:  42,
			want: 42,
		},
		{
			name: "sequence node returns default",
			node: []any{"a", "b"},
			key:  "summary",
			def:  nil,
			want: nil,
		},
		{
			name: "numeric node returns default",
			node: 3.14,
			key:  "summary",
			def:  "fallback",
			want: "fallback",
		},
		{
			name: "non-string-keyed mapping is traversable",
			node: map[any]any{200: map[string]any{"description": "ok"}},
			key:  "200",
			def:  nil,
			want: map[string]any{"description": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, document.Get(tt.node, tt.key, tt.def))
			})
		})
	}
}

func TestKeys(t *testing.T) {
	t.Run("should return sorted keys", func(t *testing.T) {
		node := map[string]any{"zebra": 1, "alpha": 2, "mid": 3}
		assert.Equal(t, []string{"alpha", "mid", "zebra"}, document.Keys(node))
	})

	t.Run("should return nil for non-mappings", func(t *testing.T) {
		assert.Nil(t, document.Keys(nil))
		assert.Nil(t, document.Keys("scalar"))
		assert.Nil(t, document.Keys([]any{1, 2}))
	})
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{name: "nil", node: nil, want: ""},
		{name: "string", node: "hello", want: "hello"},
		{name: "int", node: 200, want: "200"},
		{name: "bool", node: true, want: "true"},
		{name: "float", node: 1.5, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, document.Text(tt.node))
		})
	}
}

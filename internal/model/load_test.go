package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeforge/nodeforge/internal/model"
)

func writeModel(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
namespace: https://example.com/ua/
version: "1.0.0"
publication_date: "2024-01-01T00:00:00Z"
enumerations:
  - name: Color
    description: Display colors.
    literals:
      - name: RED
        value: "0"
      - name: GREEN
        value: "1"
classes:
  - name: Shape
    abstract: true
  - name: Point
    base: Shape
    properties:
      - name: x
        type: int
      - name: y
        type: int
      - name: color
        type: Optional[Color]
      - name: neighbors
        type: List[Point]
`

func TestLoadYAML(t *testing.T) {
	path := writeModel(t, "model.yaml", validYAML)

	st, err := model.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/ua/", st.Namespace)
	assert.Equal(t, "1.0.0", st.Version)
	require.Len(t, st.Enumerations, 1)
	require.Len(t, st.Classes, 2)

	color := st.Enumerations[0]
	assert.Equal(t, "Color", color.Name)
	require.Len(t, color.Literals, 2)
	assert.Equal(t, "RED", color.Literals[0].Name)
	assert.Equal(t, "0", color.Literals[0].Value)

	shape, point := st.Classes[0], st.Classes[1]
	assert.True(t, shape.Abstract)
	assert.Nil(t, shape.Base)
	assert.Same(t, shape, point.Base)

	require.Len(t, point.Properties, 4)
	assert.Equal(t, model.Primitive{Kind: model.KindInt}, point.Properties[0].Type)

	opt, ok := point.Properties[2].Type.(model.Optional)
	require.True(t, ok)
	ref, ok := opt.Inner.(model.Reference)
	require.True(t, ok)
	assert.Same(t, model.Entity(color), ref.Target)

	list, ok := point.Properties[3].Type.(model.List)
	require.True(t, ok)
	item, ok := list.Item.(model.Reference)
	require.True(t, ok)
	assert.Same(t, model.Entity(point), item.Target)
}

func TestLoadTOML(t *testing.T) {
	content := `
namespace = "https://example.com/ua/"
version = "1.0.0"

[[enumerations]]
name = "Color"

  [[enumerations.literals]]
  name = "RED"
  value = "0"

[[classes]]
name = "Point"

  [[classes.properties]]
  name = "x"
  type = "int"
`
	path := writeModel(t, "model.toml", content)

	st, err := model.Load(path)
	require.NoError(t, err)
	require.Len(t, st.Enumerations, 1)
	require.Len(t, st.Classes, 1)
	assert.Equal(t, "Color", st.Enumerations[0].Name)
	assert.Equal(t, "x", st.Classes[0].Properties[0].Name)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeModel(t, "model.txt", "namespace: x")

	_, err := model.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestLoadValidationErrors(t *testing.T) {

	type testCase struct {
		name     string
		content  string
		expected string
	}

	testCases := []testCase{
		{
			name: "unknown base",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
classes:
  - name: Point
    base: Missing
`,
			expected: `class Point: unknown base "Missing"`,
		},
		{
			name: "base is an enumeration",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
enumerations:
  - name: Color
classes:
  - name: Point
    base: Color
`,
			expected: `base "Color" is not a class`,
		},
		{
			name: "inheritance cycle",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
classes:
  - name: A
    base: B
  - name: B
    base: A
`,
			expected: "inheritance cycle",
		},
		{
			name: "duplicate entity name",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
enumerations:
  - name: Thing
classes:
  - name: Thing
`,
			expected: `duplicate entity name "Thing"`,
		},
		{
			name: "unknown property type",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
classes:
  - name: Point
    properties:
      - name: x
        type: Whatever
`,
			expected: `unknown type "Whatever"`,
		},
		{
			name: "nested optional",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
classes:
  - name: Point
    properties:
      - name: x
        type: Optional[Optional[int]]
`,
			expected: "Optional may not be nested",
		},
		{
			name: "missing namespace",
			content: `
version: "1.0.0"
classes:
  - name: Point
`,
			expected: "missing namespace",
		},
		{
			name: "illegal identifier",
			content: `
namespace: https://example.com/ua/
version: "1.0.0"
classes:
  - name: 9Point
`,
			expected: "illegal identifier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeModel(t, "model.yaml", tc.content)
			_, err := model.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expected)
		})
	}
}

func TestLoadCollectsMultipleProblems(t *testing.T) {
	content := `
namespace: https://example.com/ua/
version: "1.0.0"
classes:
  - name: Point
    base: Missing
    properties:
      - name: x
        type: Whatever
`
	path := writeModel(t, "model.yaml", content)
	_, err := model.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown base "Missing"`)
	assert.Contains(t, err.Error(), `unknown type "Whatever"`)
}

func TestParseTypeExpr(t *testing.T) {
	point := &model.Class{Name: "Point"}
	entities := map[string]model.Entity{"Point": point}

	type testCase struct {
		name     string
		expr     string
		expected model.TypeAnnotation
	}

	testCases := []testCase{
		{name: "bool", expr: "bool", expected: model.Primitive{Kind: model.KindBool}},
		{name: "bytes", expr: "bytes", expected: model.Primitive{Kind: model.KindBytes}},
		{name: "reference", expr: "Point", expected: model.Reference{Target: point}},
		{name: "list", expr: "List[Point]", expected: model.List{Item: model.Reference{Target: point}}},
		{name: "optional primitive", expr: "Optional[string]", expected: model.Optional{Inner: model.Primitive{Kind: model.KindString}}},
		{
			name:     "optional list",
			expr:     "Optional[List[Point]]",
			expected: model.Optional{Inner: model.List{Item: model.Reference{Target: point}}},
		},
		{name: "inner whitespace", expr: "List[ Point ]", expected: model.List{Item: model.Reference{Target: point}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ta, err := model.ParseTypeExpr(tc.expr, entities)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ta)
		})
	}

	_, err := model.ParseTypeExpr("", entities)
	assert.Error(t, err)
	_, err = model.ParseTypeExpr("List[List[Point]]", entities)
	assert.Error(t, err)
}

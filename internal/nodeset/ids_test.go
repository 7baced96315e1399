package nodeset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeforge/nodeforge/internal/model"
	"github.com/nodeforge/nodeforge/internal/nodeset"
)

func TestAllocatorSequence(t *testing.T) {
	alloc := nodeset.NewAllocator()
	assert.Equal(t, 5000, alloc.Next())
	assert.Equal(t, 5001, alloc.Next())
	assert.Equal(t, 5002, alloc.Next())
}

func TestAllocateAll(t *testing.T) {
	st := symbolTableFixture()

	asg := nodeset.AllocateAll(st)
	require.Equal(t, len(st.Enumerations)+len(st.Classes), asg.Len())

	// Enumerations first, then classes, in declaration order.
	entities := asg.Entities()
	require.Len(t, entities, 3)
	assert.Equal(t, "Color", entities[0].EntityName())
	assert.Equal(t, "Shape", entities[1].EntityName())
	assert.Equal(t, "Point", entities[2].EntityName())

	seen := make(map[int]string)
	for _, e := range entities {
		id, ok := asg.Identifier(e)
		require.True(t, ok, "entity %s has no identifier", e.EntityName())
		assert.GreaterOrEqual(t, id, nodeset.FirstIdentifier)
		_, dup := seen[id]
		assert.False(t, dup, "identifier %d assigned twice", id)
		seen[id] = e.EntityName()
	}
}

func TestAllocateAllDeterministic(t *testing.T) {
	st := symbolTableFixture()

	first := nodeset.AllocateAll(st)
	second := nodeset.AllocateAll(st)

	require.Equal(t, first.Len(), second.Len())
	for _, e := range first.Entities() {
		a, _ := first.Identifier(e)
		b, _ := second.Identifier(e)
		assert.Equal(t, a, b, "entity %s", e.EntityName())
	}
}

// symbolTableFixture builds a small model: enumeration Color, abstract
// class Shape, and class Point deriving from Shape.
func symbolTableFixture() *model.SymbolTable {
	color := &model.Enumeration{
		Name: "Color",
		Literals: []model.Literal{
			{Name: "RED", Value: "0"},
			{Name: "GREEN", Value: "1"},
		},
	}
	shape := &model.Class{Name: "Shape", Abstract: true}
	point := &model.Class{
		Name: "Point",
		Base: shape,
		Properties: []model.Property{
			{Name: "x", Type: model.Primitive{Kind: model.KindInt}},
			{Name: "y", Type: model.Primitive{Kind: model.KindInt}},
		},
	}
	return &model.SymbolTable{
		Namespace:       "https://example.com/ua/",
		Version:         "1.0.0",
		PublicationDate: "2024-01-01T00:00:00Z",
		Enumerations:    []*model.Enumeration{color},
		Classes:         []*model.Class{shape, point},
	}
}

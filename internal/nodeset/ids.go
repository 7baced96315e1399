package nodeset

import "github.com/nodeforge/nodeforge/internal/model"

// FirstIdentifier is the first node identifier handed out for model
// entities. It keeps the generated address space disjoint from the
// reserved standard-namespace identifiers used by the built-in aliases.
const FirstIdentifier = 5000

// Allocator hands out monotonically increasing node identifiers. Each
// generation run owns its own allocator; there is no process-wide state.
type Allocator struct {
	next int
}

// NewAllocator returns an allocator positioned at FirstIdentifier.
func NewAllocator() *Allocator {
	return &Allocator{next: FirstIdentifier}
}

// Next returns the current identifier and advances.
func (a *Allocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Assignment is the append-only mapping from entity to allocated
// identifier, recorded in assignment order.
type Assignment struct {
	ids   map[model.Entity]int
	order []model.Entity
}

// AllocateAll assigns one identifier to every entity of the symbol
// table in traversal order: enumerations in declaration order, then
// classes in declaration order. Two runs over an unchanged symbol table
// yield identical assignments.
func AllocateAll(st *model.SymbolTable) *Assignment {
	alloc := NewAllocator()
	asg := &Assignment{ids: make(map[model.Entity]int)}
	for _, e := range st.Entities() {
		asg.ids[e] = alloc.Next()
		asg.order = append(asg.order, e)
	}
	return asg
}

// Identifier returns the identifier allocated to e.
func (a *Assignment) Identifier(e model.Entity) (int, bool) {
	id, ok := a.ids[e]
	return id, ok
}

// Entities returns all assigned entities in assignment order.
func (a *Assignment) Entities() []model.Entity {
	return a.order
}

// Len returns the number of assigned entities.
func (a *Assignment) Len() int {
	return len(a.order)
}

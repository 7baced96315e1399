// Package model defines the meta-model symbol table consumed by the
// NodeSet generator: enumerations and classes with typed properties and
// single-parent inheritance.
//
// A SymbolTable handed to the generator is assumed validated: entity names
// are unique legal identifiers, every reference resolves, and the
// inheritance graph is acyclic. Load enforces all of that.
package model

// Location points into a model source document. Line and Column are
// 1-based; zero means unknown.
type Location struct {
	Path   string
	Line   int
	Column int
}

// SymbolTable is the root of a loaded meta-model. Declaration order of
// Enumerations and Classes is load-bearing: it drives identifier
// assignment and output ordering.
type SymbolTable struct {
	Namespace       string
	Version         string
	PublicationDate string
	Enumerations    []*Enumeration
	Classes         []*Class
}

// Entities returns all entities in traversal order: enumerations in
// declaration order, then classes in declaration order.
func (st *SymbolTable) Entities() []Entity {
	out := make([]Entity, 0, len(st.Enumerations)+len(st.Classes))
	for _, e := range st.Enumerations {
		out = append(out, e)
	}
	for _, c := range st.Classes {
		out = append(out, c)
	}
	return out
}

// Entity is either an *Enumeration or a *Class.
type Entity interface {
	EntityName() string
	isEntity()
}

// Enumeration is a named set of literals.
type Enumeration struct {
	Name        string
	Description string
	Literals    []Literal
}

func (e *Enumeration) EntityName() string { return e.Name }
func (e *Enumeration) isEntity()          {}

// Literal is one enumeration member. Value is carried verbatim; literal
// names are unique within an enumeration, values need not be.
type Literal struct {
	Name  string
	Value string
}

// Class is a named record type with single-parent inheritance.
// Base is nil for root classes.
type Class struct {
	Name        string
	Description string
	Abstract    bool
	Base        *Class
	Properties  []Property
}

func (c *Class) EntityName() string { return c.Name }
func (c *Class) isEntity()          {}

// Property is a named, typed member of a class.
type Property struct {
	Name string
	Type TypeAnnotation
}

// TypeAnnotation is the closed set of property type shapes:
// Primitive, Reference, List, and Optional. Optional never wraps
// another Optional.
type TypeAnnotation interface {
	isTypeAnnotation()
	// String renders the annotation in model syntax, for diagnostics.
	String() string
}

// PrimitiveKind enumerates the built-in scalar types of the meta-model.
type PrimitiveKind int

const (
	KindBool PrimitiveKind = iota
	KindInt
	KindFloat
	KindString
	KindBytes
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Primitive is a built-in scalar type annotation.
type Primitive struct {
	Kind PrimitiveKind
}

func (Primitive) isTypeAnnotation() {}
func (p Primitive) String() string  { return p.Kind.String() }

// Reference points at another entity of the model.
type Reference struct {
	Target Entity
}

func (Reference) isTypeAnnotation() {}
func (r Reference) String() string  { return r.Target.EntityName() }

// List is an ordered collection of Item.
type List struct {
	Item TypeAnnotation
}

func (List) isTypeAnnotation() {}
func (l List) String() string  { return "List[" + l.Item.String() + "]" }

// Optional marks a property as not required. The wrapped annotation is
// never another Optional.
type Optional struct {
	Inner TypeAnnotation
}

func (Optional) isTypeAnnotation() {}
func (o Optional) String() string  { return "Optional[" + o.Inner.String() + "]" }

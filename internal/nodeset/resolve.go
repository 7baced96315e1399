package nodeset

import "github.com/nodeforge/nodeforge/internal/model"

// FieldType is the resolved wire type of one structure field.
type FieldType struct {
	// DataType is the value of the Field element's DataType attribute,
	// either a built-in alias name or a generated data type name.
	DataType string
	// IsArray marks list-shaped fields, emitted with ValueRank 1.
	IsArray bool
}

// primitiveDataTypes maps every primitive kind onto its OPC UA built-in
// type. The table is total over the kind set; resolveFieldType fails
// closed on kinds it does not know.
var primitiveDataTypes = map[model.PrimitiveKind]string{
	model.KindBool:   "Boolean",
	model.KindInt:    "Int64",
	model.KindFloat:  "Double",
	model.KindString: "String",
	model.KindBytes:  "ByteString",
}

// resolveFieldType classifies a property's type annotation and yields
// the DataType to emit for its field. One level of Optional is stripped
// first; optionality is not encoded in the output. qualified is the
// "Class.property" name used in diagnostics.
func resolveFieldType(ta model.TypeAnnotation, asg *Assignment, qualified string) (FieldType, *Error) {
	if opt, ok := ta.(model.Optional); ok {
		ta = opt.Inner
	}

	switch t := ta.(type) {
	case model.Primitive:
		name, ok := primitiveDataTypes[t.Kind]
		if !ok {
			err := errorf("property %s: unknown primitive kind %s", qualified, t.Kind)
			return FieldType{}, &err
		}
		return FieldType{DataType: name}, nil

	case model.Reference:
		if _, ok := asg.Identifier(t.Target); !ok {
			// Unreachable for a validated symbol table; a reference to an
			// entity outside the assignment is a programming error.
			err := errorf("property %s: referenced entity %s has no identifier assignment", qualified, t.Target.EntityName())
			return FieldType{}, &err
		}
		return FieldType{DataType: DataTypeName(t.Target.EntityName())}, nil

	case model.List:
		ref, ok := t.Item.(model.Reference)
		if !ok {
			err := errorf("property %s: unsupported shape %s: list items must reference a class", qualified, ta.String())
			return FieldType{}, &err
		}
		cls, ok := ref.Target.(*model.Class)
		if !ok {
			err := errorf("property %s: unsupported shape %s: list items must reference a class", qualified, ta.String())
			return FieldType{}, &err
		}
		if _, ok := asg.Identifier(cls); !ok {
			err := errorf("property %s: referenced entity %s has no identifier assignment", qualified, cls.Name)
			return FieldType{}, &err
		}
		return FieldType{DataType: DataTypeName(cls.Name), IsArray: true}, nil

	default:
		err := errorf("property %s: unsupported shape %s", qualified, ta.String())
		return FieldType{}, &err
	}
}

package nodeset

import (
	"github.com/beevik/etree"

	"github.com/nodeforge/nodeforge/internal/model"
)

// Reserved standard-namespace nodes referenced by generated types.
const (
	// enumerationTypeID is the OPC UA Enumeration data type.
	enumerationTypeID = "i=29"
	// structureTypeID is the OPC UA Structure data type, the subtype
	// target for classes without a declared base.
	structureTypeID = "i=22"
)

// emitEnumeration produces the UADataType node for one enumeration: one
// Field per literal in declaration order, values carried verbatim.
func emitEnumeration(enum *model.Enumeration, asg *Assignment) *etree.Element {
	id, _ := asg.Identifier(enum)
	name := DataTypeName(enum.Name)

	node := etree.NewElement("UADataType")
	node.CreateAttr("NodeId", nodeID(id))
	node.CreateAttr("BrowseName", "1:"+name)

	node.CreateElement("DisplayName").SetText(name)
	node.CreateElement("Description").SetText(describe(enum.Description, name))

	refs := node.CreateElement("References")
	subtype := refs.CreateElement("Reference")
	subtype.CreateAttr("ReferenceType", "HasSubtype")
	subtype.CreateAttr("IsForward", "false")
	subtype.SetText(enumerationTypeID)

	def := node.CreateElement("Definition")
	def.CreateAttr("Name", name)
	def.CreateAttr("IsUnion", "false")

	for _, lit := range enum.Literals {
		field := def.CreateElement("Field")
		field.CreateAttr("Name", EnumLiteralName(lit.Name))
		field.CreateAttr("Value", lit.Value)
	}

	return node
}

// emitClass produces the UADataType node for one class: a HasSubtype
// reference against the declared base's data type (or the Structure root
// for base-less classes) and one Field per declared property. Resolver
// errors abort the node and are collected by the caller; a class node is
// never emitted with placeholder field types.
func emitClass(cls *model.Class, asg *Assignment) (*etree.Element, []Error) {
	id, _ := asg.Identifier(cls)
	name := DataTypeName(cls.Name)

	node := etree.NewElement("UADataType")
	node.CreateAttr("NodeId", nodeID(id))
	node.CreateAttr("BrowseName", "1:"+name)
	if cls.Abstract {
		node.CreateAttr("IsAbstract", "true")
	}

	node.CreateElement("DisplayName").SetText(name)
	node.CreateElement("Description").SetText(describe(cls.Description, name))

	refs := node.CreateElement("References")
	subtype := refs.CreateElement("Reference")
	subtype.CreateAttr("ReferenceType", "HasSubtype")
	subtype.CreateAttr("IsForward", "false")
	subtype.SetText(baseTypeID(cls, asg))

	def := node.CreateElement("Definition")
	def.CreateAttr("Name", name)
	def.CreateAttr("IsUnion", "false")

	var errs []Error
	for _, prop := range cls.Properties {
		ft, err := resolveFieldType(prop.Type, asg, cls.Name+"."+prop.Name)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		field := def.CreateElement("Field")
		field.CreateAttr("Name", FieldName(prop.Name))
		field.CreateAttr("DataType", ft.DataType)
		if ft.IsArray {
			field.CreateAttr("ValueRank", "1")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return node, nil
}

// baseTypeID returns the node id the class's HasSubtype reference points
// at: the declared base class's own data type when present, otherwise
// the universal Structure type.
func baseTypeID(cls *model.Class, asg *Assignment) string {
	if cls.Base == nil {
		return structureTypeID
	}
	id, ok := asg.Identifier(cls.Base)
	if !ok {
		// Validated symbol tables register every class before emission.
		return structureTypeID
	}
	return nodeID(id)
}

// describe falls back to the display name when the model carries no
// description for an entity.
func describe(description, displayName string) string {
	if description != "" {
		return description
	}
	return displayName
}

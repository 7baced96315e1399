package nodeset

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/nodeforge/nodeforge/internal/model"
)

// builtinAliases are the fixed primitive aliases bound to their reserved
// standard-namespace node identifiers. Order is part of the output.
var builtinAliases = []struct {
	Name   string
	NodeID string
}{
	{"Boolean", "i=1"},
	{"Int64", "i=8"},
	{"Double", "i=11"},
	{"String", "i=12"},
	{"ByteString", "i=15"},
}

// nodeID renders a namespace-1 node identifier.
func nodeID(id int) string {
	return fmt.Sprintf("ns=1;i=%d", id)
}

// buildAliases emits the Aliases element: the built-in primitive aliases
// first, then one alias per entity in assignment order. Alias names are
// unique by model-level entity name uniqueness.
func buildAliases(st *model.SymbolTable, asg *Assignment) *etree.Element {
	aliases := etree.NewElement("Aliases")

	for _, b := range builtinAliases {
		alias := aliases.CreateElement("Alias")
		alias.CreateAttr("Alias", b.Name)
		alias.SetText(b.NodeID)
	}

	for _, entity := range asg.Entities() {
		id, _ := asg.Identifier(entity)
		alias := aliases.CreateElement("Alias")
		alias.CreateAttr("Alias", DataTypeName(entity.EntityName()))
		alias.SetText(nodeID(id))
	}

	return aliases
}

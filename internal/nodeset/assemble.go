// Package nodeset turns a validated meta-model symbol table into an
// OPC UA UANodeSet XML document: it assigns stable node identifiers,
// maps model types onto OPC UA built-in types, and emits one UADataType
// node per enumeration and class.
package nodeset

import (
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/beevik/etree"

	"github.com/nodeforge/nodeforge/internal/model"
	"github.com/nodeforge/nodeforge/internal/snippet"
)

const (
	nodesetNamespace = "http://opcfoundation.org/UA/2011/03/UANodeSet.xsd"

	// Base OPC UA information model referenced by every generated document.
	baseModelURI             = "http://opcfoundation.org/UA/"
	baseModelVersion         = "1.05.03"
	baseModelPublicationDate = "2023-12-15T00:00:00Z"
)

// Options tunes a generation run.
type Options struct {
	// BaseSnippetKey, when non-empty, selects a hand-authored document
	// shell from the snippet store instead of building one from scratch.
	// A missing key is a generation error, not a silent default.
	BaseSnippetKey string
}

// Generate produces the complete node set text for the symbol table.
// It returns either the document text or a non-empty list of errors,
// never both and never neither. Independently checkable problems are all
// collected before returning; no partial document ever escapes.
//
// Each run owns its allocator and document tree, so independent runs may
// proceed concurrently without coordination.
func Generate(st *model.SymbolTable, snippets *snippet.Store, opts Options, logger *slog.Logger) (string, []Error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	doc, shellErr := buildShell(st, snippets, opts)
	if shellErr != nil {
		return "", []Error{*shellErr}
	}
	root := doc.Root()

	asg := AllocateAll(st)
	logger.Debug("assigned node identifiers",
		"entities", asg.Len(),
		"first", FirstIdentifier)

	root.AddChild(buildAliases(st, asg))

	// Emit every node before appending any, so that a resolver error in
	// a late class cannot leave a half-extended document behind.
	var errs []Error
	nodes := make([]*etree.Element, 0, asg.Len())

	for _, enum := range st.Enumerations {
		nodes = append(nodes, emitEnumeration(enum, asg))
	}
	for _, cls := range st.Classes {
		node, clsErrs := emitClass(cls, asg)
		if len(clsErrs) > 0 {
			errs = append(errs, clsErrs...)
			continue
		}
		nodes = append(nodes, node)
	}
	if len(errs) > 0 {
		return "", errs
	}

	for _, node := range nodes {
		root.AddChild(node)
	}
	logger.Info("emitted data type nodes",
		"enumerations", len(st.Enumerations),
		"classes", len(st.Classes))

	doc.Indent(2)
	text, err := doc.WriteToString()
	if err != nil {
		return "", []Error{errorf("serialize node set: %v", err)}
	}
	return stripBlankLines(text), nil
}

// buildShell produces the document with its root element, namespace
// declarations, and Models header. With a snippet key set the shell
// comes verbatim from the store; otherwise it is built from scratch
// using the symbol table's namespace metadata.
func buildShell(st *model.SymbolTable, snippets *snippet.Store, opts Options) (*etree.Document, *Error) {
	if opts.BaseSnippetKey != "" {
		text, ok := snippets.Get(opts.BaseSnippetKey)
		if !ok {
			err := errorf("the snippet for the base OPC UA node set is missing: %s", opts.BaseSnippetKey)
			return nil, &err
		}
		doc := etree.NewDocument()
		if parseErr := doc.ReadFromString(text); parseErr != nil {
			err := errorf("failed to parse the base node set XML out of the snippet %s: %v", opts.BaseSnippetKey, parseErr)
			return nil, &err
		}
		if doc.Root() == nil {
			err := errorf("the snippet %s contains no root element", opts.BaseSnippetKey)
			return nil, &err
		}
		return doc, nil
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("UANodeSet")
	root.CreateAttr("xmlns", nodesetNamespace)

	uris := root.CreateElement("NamespaceUris")
	uris.CreateElement("Uri").SetText(st.Namespace)

	models := root.CreateElement("Models")
	mdl := models.CreateElement("Model")
	mdl.CreateAttr("ModelUri", st.Namespace)
	mdl.CreateAttr("Version", st.Version)
	if st.PublicationDate != "" {
		mdl.CreateAttr("PublicationDate", st.PublicationDate)
	}
	required := mdl.CreateElement("RequiredModel")
	required.CreateAttr("ModelUri", baseModelURI)
	required.CreateAttr("Version", baseModelVersion)
	required.CreateAttr("PublicationDate", baseModelPublicationDate)

	return doc, nil
}

// stripBlankLines removes whitespace-only lines left over from indenting
// a parsed snippet shell. Cosmetic only.
func stripBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n") + "\n"
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nodeforge/nodeforge/internal/model"
	"github.com/nodeforge/nodeforge/internal/nodeset"
	"github.com/nodeforge/nodeforge/internal/snippet"
)

// outputFileName is the fixed name of the generated document inside the
// output directory.
const outputFileName = "nodeset.xml"

// Generate runs the transpiler: meta-model document in, nodeset.xml out.
type Generate struct {
	Model       string `arg:"" help:"Path to the meta-model document (.yaml, .yml, or .toml)" type:"existingfile"`
	Output      string `help:"Output directory for the generated node set" default:"." env:"NODEFORGE_OUTPUT"`
	Snippets    string `help:"Directory with hand-authored snippet files" env:"NODEFORGE_SNIPPETS"`
	BaseSnippet string `help:"Snippet key supplying the base document shell (requires --snippets)" env:"NODEFORGE_BASE_SNIPPET"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting node set generation", "model", g.Model, "output", g.Output)

	st, err := model.Load(g.Model)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	snippets, err := g.loadSnippets(logger)
	if err != nil {
		return err
	}

	opts := nodeset.Options{BaseSnippetKey: g.BaseSnippet}
	text, errs := nodeset.Generate(st, snippets, opts, logger)
	if len(errs) > 0 {
		for _, genErr := range errs {
			logger.Error("generation error", "model", g.Model, "error", genErr.Error())
		}
		return fmt.Errorf("failed to generate the node set based on %s: %d error(s)", g.Model, len(errs))
	}

	if err := os.MkdirAll(g.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", g.Output, err)
	}
	path := filepath.Join(g.Output, outputFileName)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write node set to %s: %w", path, err)
	}

	logger.Info("Node set generated", "path", path)
	return nil
}

func (g *Generate) loadSnippets(logger *slog.Logger) (*snippet.Store, error) {
	if g.Snippets == "" {
		if g.BaseSnippet != "" {
			return nil, errors.New("--base-snippet requires --snippets")
		}
		return nil, nil
	}
	store, err := snippet.Load(g.Snippets)
	if err != nil {
		return nil, fmt.Errorf("load snippets: %w", err)
	}
	logger.Debug("Loaded snippets", "dir", g.Snippets, "keys", len(store.Keys()))
	return store, nil
}

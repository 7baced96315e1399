package cmd

import (
	"fmt"
	"log/slog"

	"github.com/nodeforge/nodeforge/internal/model"
)

// Check loads and validates a meta-model document, reporting every
// problem found, without generating anything.
type Check struct {
	Model string `arg:"" help:"Path to the meta-model document (.yaml, .yml, or .toml)" type:"existingfile"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	st, err := model.Load(c.Model)
	if err != nil {
		return fmt.Errorf("model is invalid: %w", err)
	}

	logger.Info("Model is valid",
		"model", c.Model,
		"namespace", st.Namespace,
		"enumerations", len(st.Enumerations),
		"classes", len(st.Classes))
	return nil
}

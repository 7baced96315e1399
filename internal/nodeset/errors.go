package nodeset

import (
	"fmt"

	"github.com/nodeforge/nodeforge/internal/model"
)

// Error is one generation diagnostic. Where is optional; when set it
// points into the model source document.
type Error struct {
	Message string
	Where   *model.Location
}

func (e Error) Error() string {
	if e.Where == nil || e.Where.Path == "" {
		return e.Message
	}
	if e.Where.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Where.Path, e.Where.Line, e.Where.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Where.Path, e.Message)
}

func errorf(format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...)}
}

package xtab

import (
	"fmt"

	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidAxisStructure indicates a dimension or level view that does not resolve in the cube.
	ErrInvalidAxisStructure = models.ErrInvalidAxisStructure
	// ErrStructuralEditRejected indicates the document refused a header cell insertion or removal.
	ErrStructuralEditRejected = models.ErrStructuralEditRejected
	// ErrLabelWriteFailed indicates the document refused a label insertion or text change.
	ErrLabelWriteFailed = models.ErrLabelWriteFailed
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrCrosstabNotFound indicates a design without the requested crosstab.
var ErrCrosstabNotFound = errors.New("crosstab not found")

// CrosstabError reports an invalid axis structure.
type CrosstabError = models.CrosstabError

// LoadError represents an error while reading a design or workbook.
type LoadError struct {
	Path      string
	Component string // "design", "workbook"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s %q: %v", e.Component, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, component string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}

package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidAxisStructure indicates a dimension or level view without a resolvable cube reference.
var ErrInvalidAxisStructure = errors.New("invalid axis structure")

// ErrStructuralEditRejected indicates the document refused to add or remove a header cell.
var ErrStructuralEditRejected = errors.New("structural edit rejected")

// ErrLabelWriteFailed indicates the document refused a label content or text write.
var ErrLabelWriteFailed = errors.New("label write failed")

// CrosstabError reports a problem with a specific crosstab element.
type CrosstabError struct {
	// Element names the offending dimension or level view.
	Element string
	Axis    AxisType
	// Message is the localized description.
	Message string
	Err     error
}

func (e *CrosstabError) Error() string {
	return fmt.Sprintf("crosstab error on %s axis element %q: %s", e.Axis, e.Element, e.Message)
}

func (e *CrosstabError) Unwrap() error {
	return e.Err
}

// NewCrosstabError creates a new CrosstabError.
func NewCrosstabError(element string, axis AxisType, message string, err error) *CrosstabError {
	return &CrosstabError{
		Element: element,
		Axis:    axis,
		Message: message,
		Err:     err,
	}
}

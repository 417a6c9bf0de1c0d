package output

import (
	"errors"
	"fmt"
)

// ErrMarkerInValue indicates text that contains the Markdown section
// marker and so could not be read back as one section.
var ErrMarkerInValue = errors.New("value contains section marker")

// ErrDuplicateSheet indicates two sheets whose names differ only in case,
// which a workbook cannot hold as separate tabs.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// RenderError attaches the sheet name to a rendering failure.
type RenderError struct {
	SheetName string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render sheet %q: %v", e.SheetName, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

package xlsform

import (
	"errors"
	"fmt"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/output"
	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/parser"
)

// ErrUnsupportedFormat indicates a path whose extension maps to no
// readable (or writable) form.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrParse indicates a malformed JSON body.
var ErrParse = parser.ErrParse

// ErrMalformedSection indicates a Markdown section without name, header
// and divider lines.
var ErrMalformedSection = parser.ErrMalformedSection

// ErrMissingKeyColumn indicates a survey or choices sheet without its
// leading key column.
var ErrMissingKeyColumn = parser.ErrMissingKeyColumn

// ErrMarkerInValue indicates Markdown output text containing the output
// section marker.
var ErrMarkerInValue = output.ErrMarkerInValue

// ErrDuplicateSheet indicates sheet names that a workbook cannot tell apart.
var ErrDuplicateSheet = output.ErrDuplicateSheet

// SheetError is returned for failures scoped to one sheet.
type SheetError = parser.SheetError

// ConversionError represents a failure at one of the two file boundaries.
type ConversionError struct {
	Path  string
	Stage string // "read", "write"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(path, stage string, err error) *ConversionError {
	return &ConversionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

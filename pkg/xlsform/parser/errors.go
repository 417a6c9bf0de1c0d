package parser

import (
	"errors"
	"fmt"
)

// ErrParse indicates the JSON document could not be decoded.
var ErrParse = errors.New("malformed JSON document")

// ErrMalformedSection indicates a Markdown section lacks its name, header
// or divider line.
var ErrMalformedSection = errors.New("malformed section")

// ErrMissingKeyColumn indicates a survey or choices sheet has no leading
// key column to order by.
var ErrMissingKeyColumn = errors.New("missing key column")

// SheetError attaches the sheet name to a sheet-scoped failure.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

func newSheetError(sheetName string, err error) *SheetError {
	return &SheetError{SheetName: sheetName, Err: err}
}

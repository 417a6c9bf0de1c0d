package parser

import (
	"fmt"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
)

// OrderColumns moves the sheet kind's key column to the front, keeping the
// relative order of the rest. Sheets other than survey and choices are left
// as they are.
func OrderColumns(sheet *models.Sheet) error {
	key := sheet.Kind().KeyColumn()
	if key == "" {
		return nil
	}
	if !sheet.HasColumn(key) {
		return newSheetError(sheet.Name, fmt.Errorf("%w %q", ErrMissingKeyColumn, key))
	}

	cols := make([]string, 0, len(sheet.Columns))
	cols = append(cols, key)
	for _, c := range sheet.Columns {
		if c != key {
			cols = append(cols, c)
		}
	}
	sheet.Columns = cols
	return nil
}

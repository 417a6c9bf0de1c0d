// Package output renders projects to workbook and Markdown form.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
	"github.com/xuri/excelize/v2"
)

// ToWorkbook renders a project as a workbook with one tab per sheet, in
// project order. Sheet names are matched case-insensitively by workbooks,
// so names differing only in case fail with ErrDuplicateSheet. The caller
// must Close the returned file.
func ToWorkbook(p *models.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	var written []string
	for i, sheet := range p.Sheets() {
		for _, name := range written {
			if strings.EqualFold(name, sheet.Name) {
				f.Close()
				return nil, &RenderError{SheetName: sheet.Name,
					Err: fmt.Errorf("%w: collides with %q", ErrDuplicateSheet, name)}
			}
		}
		written = append(written, sheet.Name)

		var err error
		if i == 0 {
			err = f.SetSheetName(defaultSheet, sheet.Name)
		} else {
			_, err = f.NewSheet(sheet.Name)
		}
		if err == nil {
			err = writeSheet(f, sheet)
		}
		if err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook renders p as an xlsx document to w.
func WriteWorkbook(w io.Writer, p *models.Project) error {
	f, err := ToWorkbook(p)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// writeSheet writes the header row and one row per record. Absent values
// leave the cell untouched.
func writeSheet(f *excelize.File, sheet *models.Sheet) error {
	for colIdx, col := range sheet.Columns {
		if err := setCell(f, sheet.Name, colIdx, 0, col); err != nil {
			return err
		}
	}

	for rowIdx := range sheet.Records {
		for colIdx, value := range sheet.Row(rowIdx) {
			if value == "" {
				continue
			}
			if err := setCell(f, sheet.Name, colIdx, rowIdx+1, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// setCell writes value at zero-based (colIdx, rowIdx).
func setCell(f *excelize.File, sheetName string, colIdx, rowIdx int, value string) error {
	cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return err
	}
	return f.SetCellStr(sheetName, cellName, value)
}

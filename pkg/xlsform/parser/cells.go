package parser

import (
	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of a workbook into a project, in tab order.
// Columns are taken as they appear; no reordering is applied.
func ReadWorkbook(f *excelize.File) (*models.Project, error) {
	project := models.NewProject()
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName)
		if err != nil {
			return nil, newSheetError(sheetName, err)
		}
		project.Add(sheet)
	}
	return project, nil
}

// ReadSheet extracts one sheet. The first non-blank row is the header;
// columns with a blank header cell are ignored, and fully blank data rows
// are skipped.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	sheet := models.NewSheet(sheetName)
	headerIdx := firstDataRow(rows)
	if headerIdx < 0 {
		return sheet, nil
	}

	header := rows[headerIdx]
	for _, col := range header {
		if col != "" {
			sheet.AddColumn(col)
		}
	}

	for _, row := range rows[headerIdx+1:] {
		rec := make(models.Record, len(header))
		hasData := false
		for colIdx, cellValue := range row {
			if colIdx >= len(header) || header[colIdx] == "" || cellValue == "" {
				continue
			}
			hasData = true
			rec.Set(header[colIdx], cellValue)
		}
		if hasData {
			sheet.Records = append(sheet.Records, rec)
		}
	}

	return sheet, nil
}

// firstDataRow returns the index of the first row holding a non-empty
// cell, or -1 for a blank sheet.
func firstDataRow(rows [][]string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if cell != "" {
				return rowIdx
			}
		}
	}
	return -1
}

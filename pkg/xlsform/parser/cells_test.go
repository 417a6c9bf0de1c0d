package parser

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
)

func TestReadWorkbook(t *testing.T) {
	// Create a temporary workbook for testing
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "survey"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	f.SetCellValue("survey", "A1", "name")
	f.SetCellValue("survey", "B1", "type")
	f.SetCellValue("survey", "C1", "label")
	f.SetCellValue("survey", "A2", "q1")
	f.SetCellValue("survey", "B2", "text")
	f.SetCellValue("survey", "C2", "Name?")
	f.SetCellValue("survey", "A3", "q2")
	f.SetCellValue("survey", "B3", "integer")
	f.SetCellValue("survey", "D3", "beyond the header")

	if _, err := f.NewSheet("settings"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	// Header starts after two blank rows
	f.SetCellValue("settings", "A3", "form_title")
	f.SetCellValue("settings", "A4", "Census")

	if _, err := f.NewSheet("empty"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and read
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	project, err := ReadWorkbook(f2)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if diff := cmp.Diff([]string{"survey", "settings", "empty"}, project.Names()); diff != "" {
		t.Errorf("sheet names mismatch (-want +got):\n%s", diff)
	}

	survey, _ := project.Sheet("survey")
	wantSurvey := &models.Sheet{
		Name:    "survey",
		Columns: []string{"name", "type", "label"},
		Records: []models.Record{
			{"name": "q1", "type": "text", "label": "Name?"},
			{"name": "q2", "type": "integer"},
		},
	}
	if diff := cmp.Diff(wantSurvey, survey); diff != "" {
		t.Errorf("survey mismatch (-want +got):\n%s", diff)
	}

	settings, _ := project.Sheet("settings")
	if len(settings.Records) != 1 || settings.Records[0].Value("form_title") != "Census" {
		t.Errorf("Expected one settings record with form_title 'Census', got %v", settings.Records)
	}

	empty, _ := project.Sheet("empty")
	if len(empty.Columns) != 0 || len(empty.Records) != 0 {
		t.Errorf("Expected empty sheet, got %+v", empty)
	}
}

func TestFirstDataRow(t *testing.T) {
	tests := []struct {
		rows     [][]string
		expected int
	}{
		{[][]string{{"a"}}, 0},
		{[][]string{{}, {"", ""}, {"", "x"}}, 2},
		{[][]string{{}, {""}}, -1},
		{nil, -1},
	}

	for _, tt := range tests {
		result := firstDataRow(tt.rows)
		if result != tt.expected {
			t.Errorf("firstDataRow(%v) = %d, expected %d", tt.rows, result, tt.expected)
		}
	}
}

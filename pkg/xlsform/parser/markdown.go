// Package parser reads Markdown tables, JSON survey exports and workbooks
// into projects.
package parser

import (
	"fmt"
	"strings"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
)

// DefaultMarker separates sheets in the Markdown dialect.
const DefaultMarker = "%%"

// Section is one marker-delimited chunk of a Markdown document.
type Section struct {
	// Name is the trimmed first line of the chunk.
	Name string
	// Lines holds the remaining non-blank lines: header, divider, data.
	Lines []string
}

// ParseMarkdown parses a marker-delimited pipe-table document into a project.
func ParseMarkdown(text, marker string) (*models.Project, error) {
	project := models.NewProject()
	for _, section := range SliceSections(text, marker) {
		sheet, err := BuildSheet(section)
		if err != nil {
			return nil, err
		}
		project.Add(sheet)
	}
	return project, nil
}

// SliceSections splits text on marker and returns the non-empty sections
// in document order. An empty marker falls back to DefaultMarker.
func SliceSections(text, marker string) []Section {
	if marker == "" {
		marker = DefaultMarker
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sections []Section
	for _, chunk := range strings.Split(text, marker) {
		lines := nonBlankLines(chunk)
		if len(lines) == 0 {
			continue
		}
		sections = append(sections, Section{
			Name:  strings.TrimSpace(lines[0]),
			Lines: lines[1:],
		})
	}
	return sections
}

// BuildSheet turns a section's header, divider and data lines into a sheet.
// The divider line is skipped without inspection.
func BuildSheet(section Section) (*models.Sheet, error) {
	if len(section.Lines) < 2 {
		return nil, newSheetError(section.Name,
			fmt.Errorf("%w: want name, header and divider lines, got %d lines",
				ErrMalformedSection, len(section.Lines)+1))
	}

	header := SplitCells(section.Lines[0])
	sheet := models.NewSheet(section.Name)
	for _, col := range header {
		if col != "" {
			sheet.AddColumn(col)
		}
	}

	for _, line := range section.Lines[2:] {
		cells := SplitCells(line)
		rec := make(models.Record, len(header))
		for i := 0; i < len(header) && i < len(cells); i++ {
			if header[i] == "" {
				continue
			}
			rec.Set(header[i], cells[i])
		}
		sheet.Records = append(sheet.Records, rec)
	}
	return sheet, nil
}

// SplitCells splits a pipe-delimited line into trimmed cells. The outer
// pipes are boundaries, not cells; an empty cell between two pipes is kept
// as "" so later cells stay in position. Only \| is unescaped; markup such
// as <br> is kept as written. A line of only pipes and whitespace yields
// no cells.
func SplitCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = line[:len(line)-1]
	}

	var cells []string
	var cur strings.Builder
	empty := true
	flush := func() {
		cell := strings.TrimSpace(cur.String())
		if cell != "" {
			empty = false
		}
		cells = append(cells, cell)
		cur.Reset()
	}
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			cur.WriteByte('|')
			i++
		case line[i] == '|':
			flush()
		default:
			cur.WriteByte(line[i])
		}
	}
	flush()

	if empty {
		return nil
	}
	return cells
}

func nonBlankLines(chunk string) []string {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

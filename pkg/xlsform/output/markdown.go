package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/parser"
)

// minDividerWidth keeps the divider row a valid Markdown table divider.
const minDividerWidth = 3

// lineBreak replaces newlines inside a cell; XLSForm tools read it as markup.
const lineBreak = "<br>"

// ToMarkdown renders p as marker-delimited pipe tables, one section per
// sheet in project order. Sheets without columns are skipped since they
// have no table to print. An empty marker falls back to the default.
// Text containing the marker is rejected with ErrMarkerInValue, since the
// result would split into extra sections when read back.
func ToMarkdown(p *models.Project, marker string) ([]byte, error) {
	if marker == "" {
		marker = parser.DefaultMarker
	}

	var sections []string
	for _, sheet := range p.Sheets() {
		if len(sheet.Columns) == 0 {
			continue
		}
		if strings.Contains(sheet.Name, marker) {
			return nil, &RenderError{SheetName: sheet.Name,
				Err: fmt.Errorf("%w %q: sheet name", ErrMarkerInValue, marker)}
		}
		table, err := renderTable(sheet, marker)
		if err != nil {
			return nil, &RenderError{SheetName: sheet.Name, Err: err}
		}
		sections = append(sections, marker+" "+sheet.Name, table)
	}
	if len(sections) == 0 {
		return nil, nil
	}
	return []byte(strings.Join(sections, "\n\n") + "\n"), nil
}

// WriteMarkdown writes the Markdown rendering of p to w.
func WriteMarkdown(w io.Writer, p *models.Project, marker string) error {
	data, err := ToMarkdown(p, marker)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// renderTable prints a sheet as an aligned pipe table.
func renderTable(sheet *models.Sheet, marker string) (string, error) {
	rows := make([][]string, 0, len(sheet.Records)+1)
	rows = append(rows, escapeRow(sheet.Columns))
	for i := range sheet.Records {
		rows = append(rows, escapeRow(sheet.Row(i)))
	}
	for i, row := range rows {
		for j, cell := range row {
			if strings.Contains(cell, marker) {
				return "", fmt.Errorf("%w %q: row %d, column %q", ErrMarkerInValue, marker, i, sheet.Columns[j])
			}
		}
	}

	widths := make([]int, len(sheet.Columns))
	for i := range widths {
		widths[i] = minDividerWidth
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	divider := make([]string, len(widths))
	for i, w := range widths {
		divider[i] = strings.Repeat("-", w)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(rows[0], widths), formatRow(divider, widths))
	for _, row := range rows[1:] {
		lines = append(lines, formatRow(row, widths))
	}
	table := strings.Join(lines, "\n")
	if strings.Contains(table, marker) {
		return "", fmt.Errorf("%w %q: marker collides with table syntax", ErrMarkerInValue, marker)
	}
	return table, nil
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)))
		b.WriteString(" |")
	}
	return b.String()
}

// escapeRow makes cell values safe inside a pipe table.
func escapeRow(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		cell = strings.ReplaceAll(cell, "\r\n", "\n")
		cell = strings.ReplaceAll(cell, "|", `\|`)
		out[i] = strings.ReplaceAll(cell, "\n", lineBreak)
	}
	return out
}

// displayWidth counts terminal columns, treating wide East Asian runes as two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

package xlsform

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the document forms a project can take.
type Format int

const (
	// FormatUnknown is an unrecognized extension.
	FormatUnknown Format = iota
	// FormatMarkdown is the marker-delimited pipe-table dialect.
	FormatMarkdown
	// FormatJSON is a structured JSON survey export (input only).
	FormatJSON
	// FormatXLSX is an XLSForm workbook.
	FormatXLSX
)

// String returns the short name of the format.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// DetectFormat maps a path's extension to a format, ignoring case.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".json":
		return FormatJSON
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

// InputFormat returns the format to read path with.
func InputFormat(path string) (Format, error) {
	f := DetectFormat(path)
	if f == FormatUnknown {
		return f, fmt.Errorf("%w: input %q", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// OutputTarget returns the path and format to write to. A path with an
// unrecognized extension is written as a workbook with ".xlsx" appended.
// JSON cannot be written.
func OutputTarget(path string) (string, Format, error) {
	switch f := DetectFormat(path); f {
	case FormatMarkdown, FormatXLSX:
		return path, f, nil
	case FormatJSON:
		return path, f, fmt.Errorf("%w: output %q (json is read-only)", ErrUnsupportedFormat, path)
	default:
		return path + ".xlsx", FormatXLSX, nil
	}
}

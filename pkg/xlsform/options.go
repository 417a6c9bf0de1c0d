// Package xlsform converts survey forms between Markdown, JSON exports and
// XLSForm workbooks.
package xlsform

import "github.com/joshuaberetta/md2xlsform/pkg/xlsform/parser"

// DefaultMarker is the section marker used when none is configured.
const DefaultMarker = parser.DefaultMarker

// Options configures conversion behavior.
type Options struct {
	// InputMarker separates sheets when reading Markdown.
	// If empty, defaults to DefaultMarker.
	InputMarker string
	// OutputMarker separates sheets when writing Markdown. It is independent
	// of InputMarker so documents can be moved between conventions.
	// If empty, defaults to DefaultMarker.
	OutputMarker string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		InputMarker:  DefaultMarker,
		OutputMarker: DefaultMarker,
	}
}

// InputMarkerOrDefault returns the marker used for parsing Markdown.
func (o Options) InputMarkerOrDefault() string {
	if o.InputMarker != "" {
		return o.InputMarker
	}
	return DefaultMarker
}

// OutputMarkerOrDefault returns the marker used for rendering Markdown.
func (o Options) OutputMarkerOrDefault() string {
	if o.OutputMarker != "" {
		return o.OutputMarker
	}
	return DefaultMarker
}

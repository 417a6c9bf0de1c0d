package xlsform

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/output"
	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/parser"
	"github.com/xuri/excelize/v2"
)

// Convert reads the document at inPath and writes it to outPath. It returns
// the path actually written, which gains ".xlsx" when outPath has no
// recognized extension. Nothing is written if reading fails.
func Convert(inPath, outPath string, opts Options) (string, error) {
	if _, _, err := OutputTarget(outPath); err != nil {
		return "", err
	}

	project, err := Read(inPath, opts)
	if err != nil {
		return "", err
	}

	return Write(project, outPath, opts)
}

// Read parses the document at path, choosing the parser by extension.
func Read(path string, opts Options) (*models.Project, error) {
	format, err := InputFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewConversionError(path, "read", err)
	}
	defer f.Close()

	project, err := Parse(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return project, nil
}

// Parse decodes a document of the given format from r.
func Parse(r io.Reader, format Format, opts Options) (*models.Project, error) {
	switch format {
	case FormatMarkdown:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return parser.ParseMarkdown(string(data), opts.InputMarkerOrDefault())
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return parser.ParseJSON(data)
	case FormatXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parser.ReadWorkbook(f)
	default:
		return nil, fmt.Errorf("%w: cannot read %s", ErrUnsupportedFormat, format)
	}
}

// Render serializes the project in the given format.
func Render(p *models.Project, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return output.ToMarkdown(p, opts.OutputMarkerOrDefault())
	case FormatXLSX:
		var buf bytes.Buffer
		if err := output.WriteWorkbook(&buf, p); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, format)
	}
}

// Write renders the project and stores it at path, returning the path
// written. The file is replaced atomically.
func Write(p *models.Project, path string, opts Options) (string, error) {
	target, format, err := OutputTarget(path)
	if err != nil {
		return "", err
	}

	data, err := Render(p, format, opts)
	if err != nil {
		return "", NewConversionError(target, "write", err)
	}

	if err := writeFileAtomic(target, data); err != nil {
		return "", NewConversionError(target, "write", err)
	}
	return target, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

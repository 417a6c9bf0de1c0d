package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joshuaberetta/md2xlsform/pkg/xlsform/models"
)

const (
	// ReservedPrefix marks internal fields of a JSON export; they are dropped.
	ReservedPrefix = "$"
	// ListReferenceField names the choice list a select question draws from.
	ListReferenceField = "select_from_list_name"
	// TranslationSeparator joins a translated field name and its language.
	TranslationSeparator = "::"
)

// document is the top-level shape of a JSON survey export.
type document struct {
	Survey       []json.RawMessage `json:"survey"`
	Choices      []json.RawMessage `json:"choices"`
	Settings     json.RawMessage   `json:"settings"`
	Translated   []string          `json:"translated"`
	Translations []*string         `json:"translations"`
}

// ParseJSON normalizes a JSON survey export into a project. Translated
// fields are flattened to one column per language, select questions get
// their list name folded into "type", and survey and choices columns are
// put in canonical order. Missing or empty sheets are left out.
func ParseJSON(data []byte) (*models.Project, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	tr := newTranslator(doc.Translated, doc.Translations)
	project := models.NewProject()

	for _, part := range []struct {
		name  string
		items []json.RawMessage
	}{
		{string(models.KindSurvey), doc.Survey},
		{string(models.KindChoices), doc.Choices},
	} {
		if len(part.items) == 0 {
			continue
		}
		sheet := models.NewSheet(part.name)
		for i, raw := range part.items {
			rec, keys, err := normalizeItem(raw, tr)
			if err != nil {
				return nil, newSheetError(part.name, fmt.Errorf("%w: item %d: %v", ErrParse, i, err))
			}
			sheet.Append(rec, keys...)
		}
		if err := OrderColumns(sheet); err != nil {
			return nil, err
		}
		project.Add(sheet)
	}

	settings, err := settingsSheet(doc.Settings)
	if err != nil {
		return nil, newSheetError(string(models.KindSettings), fmt.Errorf("%w: %v", ErrParse, err))
	}
	if settings != nil {
		project.Add(settings)
	}

	return project, nil
}

// normalizeItem flattens one survey or choices item. It returns the record
// and its keys in source order.
func normalizeItem(raw json.RawMessage, tr translator) (models.Record, []string, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return nil, nil, err
	}

	rec := make(models.Record, len(fields))
	var (
		keys     []string
		itemType string
		listName string
	)
	for _, f := range fields {
		if strings.HasPrefix(f.key, ReservedPrefix) {
			continue
		}
		if f.key == ListReferenceField {
			listName = scalarString(f.value)
			continue
		}
		if tr.translates(f.key) {
			keys = append(keys, tr.flatten(rec, f.key, f.value)...)
			continue
		}
		v := scalarString(f.value)
		if f.key == "type" {
			itemType = v
		}
		rec.Set(f.key, v)
		keys = append(keys, f.key)
	}

	if (itemType == "select_one" || itemType == "select_multiple") && listName != "" {
		rec.Set("type", itemType+" "+listName)
	}
	return rec, keys, nil
}

// settingsSheet wraps the settings object, or each object of a settings
// array, as records. It returns nil when there is nothing to keep.
func settingsSheet(raw json.RawMessage) (*models.Sheet, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	objects := []json.RawMessage{raw}
	if raw[0] == '[' {
		objects = nil
		if err := json.Unmarshal(raw, &objects); err != nil {
			return nil, err
		}
	}

	sheet := models.NewSheet(string(models.KindSettings))
	for _, obj := range objects {
		fields, err := decodeObject(obj)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}
		rec := make(models.Record, len(fields))
		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			rec.Set(f.key, scalarString(f.value))
			keys = append(keys, f.key)
		}
		sheet.Append(rec, keys...)
	}
	if len(sheet.Records) == 0 {
		return nil, nil
	}
	return sheet, nil
}

// translator flattens multi-language field values.
type translator struct {
	fields    map[string]bool
	languages []*string
}

func newTranslator(translated []string, languages []*string) translator {
	fields := make(map[string]bool, len(translated))
	for _, f := range translated {
		fields[f] = true
	}
	return translator{fields: fields, languages: languages}
}

func (t translator) translates(field string) bool {
	return t.fields[field]
}

// untranslated reports the single-null sentinel: the form has no languages.
func (t translator) untranslated() bool {
	return len(t.languages) == 1 && t.languages[0] == nil
}

// flatten writes the values of a translated field into rec and returns the
// columns it produced. Values aligned with the declared languages become
// field::language columns; anything else keeps only its first value under
// the bare field name.
func (t translator) flatten(rec models.Record, field string, raw json.RawMessage) []string {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		rec.Set(field, scalarString(raw))
		return []string{field}
	}

	if len(values) == len(t.languages) && !t.untranslated() {
		keys := make([]string, len(values))
		for i, v := range values {
			keys[i] = t.column(field, i)
			rec.Set(keys[i], scalarString(v))
		}
		return keys
	}

	if len(values) == 0 {
		return nil
	}
	rec.Set(field, scalarString(values[0]))
	return []string{field}
}

// column names the output column for language i. A null language is the
// form's default and keeps the bare field name.
func (t translator) column(field string, i int) string {
	if lang := t.languages[i]; lang != nil {
		return field + TranslationSeparator + *lang
	}
	return field
}

type field struct {
	key   string
	value json.RawMessage
}

// decodeObject reads a JSON object keeping its keys in document order.
func decodeObject(raw json.RawMessage) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		fields = append(fields, field{key: key, value: v})
	}
	return fields, nil
}

// scalarString renders a JSON value as cell text. Strings are unquoted,
// numbers and booleans keep their literal form, containers are compacted
// and null is empty.
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	default:
		return string(raw)
	}
}

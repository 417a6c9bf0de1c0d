package models

// SheetKind classifies a sheet by the fixed XLSForm sheet names.
type SheetKind string

const (
	// KindSurvey is the question sheet; its leading column is "type".
	KindSurvey SheetKind = "survey"
	// KindChoices holds choice lists; its leading column is "list_name".
	KindChoices SheetKind = "choices"
	// KindSettings holds the single form settings row.
	KindSettings SheetKind = "settings"
	// KindOther is any other tab, carried through untouched.
	KindOther SheetKind = "other"
)

// KindOf maps a sheet name to its kind.
func KindOf(name string) SheetKind {
	switch SheetKind(name) {
	case KindSurvey, KindChoices, KindSettings:
		return SheetKind(name)
	default:
		return KindOther
	}
}

// KeyColumn returns the column that must lead the sheet, or "" when the
// kind has no mandated first column.
func (k SheetKind) KeyColumn() string {
	switch k {
	case KindSurvey:
		return "type"
	case KindChoices:
		return "list_name"
	default:
		return ""
	}
}

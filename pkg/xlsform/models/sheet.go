package models

// Sheet is one named table: an ordered column list and ordered records.
type Sheet struct {
	// Name is the sheet name (survey, choices, settings, or any other tab).
	Name string
	// Columns is the canonical column order used for serialization.
	Columns []string
	// Records holds the data rows in source order.
	Records []Record
}

// NewSheet creates an empty sheet with the given columns.
func NewSheet(name string, columns ...string) *Sheet {
	s := &Sheet{Name: name}
	for _, c := range columns {
		s.AddColumn(c)
	}
	return s
}

// Kind returns the sheet kind derived from its name.
func (s *Sheet) Kind() SheetKind {
	return KindOf(s.Name)
}

// HasColumn reports whether col is part of the sheet's column set.
func (s *Sheet) HasColumn(col string) bool {
	return s.columnIndex(col) >= 0
}

// AddColumn appends col to the column set if it is not already there.
func (s *Sheet) AddColumn(col string) {
	if !s.HasColumn(col) {
		s.Columns = append(s.Columns, col)
	}
}

// Append adds a record, extending the column set with any unseen keys
// in the order given. Keys may name columns the record leaves empty.
func (s *Sheet) Append(rec Record, keys ...string) {
	for _, k := range keys {
		s.AddColumn(k)
	}
	s.Records = append(s.Records, rec)
}

// Row renders record i in column order, absent cells as "".
func (s *Sheet) Row(i int) []string {
	rec := s.Records[i]
	row := make([]string, len(s.Columns))
	for j, col := range s.Columns {
		row[j] = rec.Value(col)
	}
	return row
}

func (s *Sheet) columnIndex(col string) int {
	for i, c := range s.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

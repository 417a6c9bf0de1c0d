// Package models defines the in-memory tabular form of an XLSForm project.
package models

// Record is one row of a sheet keyed by column name.
// A column with no entry is absent; absent and empty cells render the same.
type Record map[string]string

// Lookup returns the value stored for col and whether it is present.
func (r Record) Lookup(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Value returns the value for col, or "" when the column is absent.
func (r Record) Value(col string) string {
	return r[col]
}

// Set stores v under col. Empty values are not stored so that an empty
// cell and a missing cell share one representation.
func (r Record) Set(col, v string) {
	if v == "" {
		delete(r, col)
		return
	}
	r[col] = v
}

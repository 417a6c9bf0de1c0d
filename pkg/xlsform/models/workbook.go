package models

// Project maps sheet names to sheets, remembering insertion order.
type Project struct {
	sheets []*Sheet
	index  map[string]int
}

// NewProject returns an empty project.
func NewProject() *Project {
	return &Project{index: make(map[string]int)}
}

// Add stores sheet under its name. A sheet with the same name is replaced
// in place, keeping its original position.
func (p *Project) Add(sheet *Sheet) {
	if i, ok := p.index[sheet.Name]; ok {
		p.sheets[i] = sheet
		return
	}
	p.index[sheet.Name] = len(p.sheets)
	p.sheets = append(p.sheets, sheet)
}

// Sheet returns the sheet with the given name.
func (p *Project) Sheet(name string) (*Sheet, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.sheets[i], true
}

// Sheets returns the sheets in insertion order.
func (p *Project) Sheets() []*Sheet {
	return p.sheets
}

// Names returns the sheet names in insertion order.
func (p *Project) Names() []string {
	names := make([]string, len(p.sheets))
	for i, s := range p.sheets {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of sheets.
func (p *Project) Len() int {
	return len(p.sheets)
}

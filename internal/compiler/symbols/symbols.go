package symbols

import "sort"

// Table tracks every name recognized during one translation: the variables
// declared so far, the labels declared so far, and the labels goto'ed so
// far. One Table belongs to one parser instance, so parallel translations
// cannot interfere.
type Table struct {
	vars           map[string]bool
	labelsDeclared map[string]bool
	labelsGotoed   map[string]bool
}

func NewTable() *Table {
	return &Table{
		vars:           make(map[string]bool),
		labelsDeclared: make(map[string]bool),
		labelsGotoed:   make(map[string]bool),
	}
}

// DeclareVar records a variable name and reports whether it was new. A
// repeated declaration is not an error; it just returns false so the caller
// can skip emitting a second declaration.
func (t *Table) DeclareVar(name string) bool {
	if t.vars[name] {
		return false
	}
	t.vars[name] = true
	return true
}

// HasVar reports whether the name has been declared.
func (t *Table) HasVar(name string) bool {
	return t.vars[name]
}

// DeclareLabel records a label definition, reporting false if the label was
// already declared.
func (t *Table) DeclareLabel(name string) bool {
	if t.labelsDeclared[name] {
		return false
	}
	t.labelsDeclared[name] = true
	return true
}

// RefLabel records a goto target. Whether the label exists is not checked
// here; forward references are resolved by UndeclaredGotos after the whole
// program has been recognized.
func (t *Table) RefLabel(name string) {
	t.labelsGotoed[name] = true
}

// UndeclaredGotos returns, in sorted order, every goto'ed label that was
// never declared.
func (t *Table) UndeclaredGotos() []string {
	var missing []string
	for name := range t.labelsGotoed {
		if !t.labelsDeclared[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

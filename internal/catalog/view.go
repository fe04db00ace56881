package catalog

// ViewObject is a database view. Definition is the normalized SQL select
// text (see internal/sqlsplit for the parse/deparse normalization the
// inspector applies before storing it here).
type ViewObject struct {
	base
	Definition string
}

func NewView(identity, schema, name, definition string) *ViewObject {
	return &ViewObject{base: newBase(identity, schema, name), Definition: definition}
}

func (v *ViewObject) Kind() Type { return View }

// Package catalog defines the polymorphic object model shared by every
// PostgreSQL catalog kind the engine understands. An Object is identified
// globally by its identity string; consumers switch on Kind() to reach
// kind-specific fields, the same way pgschema's ir package switches on
// obj_type.
package catalog

// Type tags the kind of catalog object a record represents. The set is
// closed: adding a kind is a code change (a new struct plus registry
// entries in internal/handler), not configuration.
type Type string

const (
	Table    Type = "table"
	View     Type = "view"
	Index    Type = "index"
	Sequence Type = "sequence"
	Enum     Type = "enum"
	Function Type = "function"
	Trigger  Type = "trigger"
)

// Object is the common surface every catalog object kind exposes. identity
// is a globally unique, schema-qualified (and, for overloaded functions,
// signature-qualified) name.
type Object interface {
	Identity() string
	Kind() Type
	SchemaName() string
	ObjectName() string
}

// base carries the attributes every kind shares and is embedded by each
// concrete object type.
type base struct {
	ID     string
	Schema string
	Name   string
}

func (b base) Identity() string    { return b.ID }
func (b base) SchemaName() string  { return b.Schema }
func (b base) ObjectName() string  { return b.Name }

// newBase builds the shared fields for a kind-specific constructor.
func newBase(identity, schema, name string) base {
	return base{ID: identity, Schema: schema, Name: name}
}

package catalog

// TriggerObject is a database trigger. TableName is the qualified name of
// the table it is attached to, used to render DROP TRIGGER ... ON ...
// since triggers have no standalone drop syntax.
type TriggerObject struct {
	base
	TableName  string
	Definition string
}

func NewTrigger(identity, schema, name, tableName, definition string) *TriggerObject {
	return &TriggerObject{base: newBase(identity, schema, name), TableName: tableName, Definition: definition}
}

func (t *TriggerObject) Kind() Type { return Trigger }

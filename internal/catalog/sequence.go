package catalog

// SequenceObject carries the attributes needed to re-emit a CREATE
// SEQUENCE statement. MinValue/MaxValue are nil when the sequence uses
// PostgreSQL's type-dependent default bound.
type SequenceObject struct {
	base
	DataType      string
	StartValue    int64
	Increment     int64
	MinValue      *int64
	MaxValue      *int64
	Cycle         bool
	OwnedByTable  string
	OwnedByColumn string
}

func NewSequence(
	identity, schema, name, dataType string,
	startValue, increment int64,
	minValue, maxValue *int64,
	cycle bool,
	ownedByTable, ownedByColumn string,
) *SequenceObject {
	return &SequenceObject{
		base:          newBase(identity, schema, name),
		DataType:      dataType,
		StartValue:    startValue,
		Increment:     increment,
		MinValue:      minValue,
		MaxValue:      maxValue,
		Cycle:         cycle,
		OwnedByTable:  ownedByTable,
		OwnedByColumn: ownedByColumn,
	}
}

func (s *SequenceObject) Kind() Type { return Sequence }

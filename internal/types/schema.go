package types

// ColumnSchema is one column of a table definition.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type ColumnSchema struct {
	Name          string
	Type          TypeCode
	PrimaryKey    bool
	AutoIncrement bool
	NotNull       bool
	Default       *Node // literal node, nil when no default
}

// IndexSchema is an index over an ordered column list.
type IndexSchema struct {
	Name    string
	Columns []string
	Unique  bool
}

// ForeignKey is a named foreign-key constraint.
type ForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
}

// TableSchema is an immutable table definition consumed by the DDL renderer.
type TableSchema struct {
	Name        string
	Columns     []ColumnSchema
	Indexes     []IndexSchema
	ForeignKeys []ForeignKey
}

// PrimaryKeyColumns returns the names of the primary-key columns in
// declaration order.
func (t *TableSchema) PrimaryKeyColumns() []string {
	var pk []string
	for i := range t.Columns {
		if t.Columns[i].PrimaryKey {
			pk = append(pk, t.Columns[i].Name)
		}
	}
	return pk
}

// SequenceSchema is an immutable sequence definition.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type SequenceSchema struct {
	Name      string
	Type      TypeCode // element numeric kind, TBigInt when unset
	Start     *int64
	Increment *int64
	MinValue  *int64
	MaxValue  *int64
	Cycle     bool
}

// DDL is a phase-ordered statement set. Callers run create phase 1 for every
// object before create phase 2 (e.g. foreign keys after all tables exist),
// and drop phase 1 before drop phase 2.
type DDL struct {
	CreatePhase1 []string
	CreatePhase2 []string
	DropPhase1   []string
	DropPhase2   []string
}

// CreateStatements returns both create phases in order. Convenience for
// single-object use; multi-table schemas must interleave by phase instead.
func (d *DDL) CreateStatements() []string {
	out := make([]string, 0, len(d.CreatePhase1)+len(d.CreatePhase2))
	out = append(out, d.CreatePhase1...)
	out = append(out, d.CreatePhase2...)
	return out
}

// DropStatements returns both drop phases in order.
func (d *DDL) DropStatements() []string {
	out := make([]string, 0, len(d.DropPhase1)+len(d.DropPhase2))
	out = append(out, d.DropPhase1...)
	out = append(out, d.DropPhase2...)
	return out
}

// Merge appends another statement set phase by phase, preserving order
// within each phase.
func (d *DDL) Merge(other *DDL) {
	d.CreatePhase1 = append(d.CreatePhase1, other.CreatePhase1...)
	d.CreatePhase2 = append(d.CreatePhase2, other.CreatePhase2...)
	d.DropPhase1 = append(d.DropPhase1, other.DropPhase1...)
	d.DropPhase2 = append(d.DropPhase2, other.DropPhase2...)
}

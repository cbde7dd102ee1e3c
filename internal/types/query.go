package types

// TableRef identifies a base table. Column nodes hold a pointer to the same
// TableRef that appears in the query's FROM list; alias resolution is by
// identity, not by name, so the same table can appear twice under different
// aliases.
type TableRef struct {
	Name string
}

func (*TableRef) isSource() {}
func (*Query) isSource()    {}

// Source is a FROM-clause item: a base table or a nested subquery.
type Source interface {
	isSource()
}

// JoinKind represents the type of SQL join.
type JoinKind string

const (
	InnerJoin JoinKind = "INNER JOIN"
	LeftJoin  JoinKind = "LEFT JOIN"
	RightJoin JoinKind = "RIGHT JOIN"
	CrossJoin JoinKind = "CROSS JOIN"
)

// Join represents a JOIN clause. On is nil for CROSS JOIN.
type Join struct {
	Kind   JoinKind
	Source Source
	On     *Node
}

// Ordering is one ORDER BY term.
type Ordering struct {
	Expr *Node
	Desc bool
}

// Modifier is a typed query modifier. Pagination is the only kind the
// renderer interprets; unknown modifiers pass through untouched.
type Modifier interface {
	isModifier()
}

// TakeDrop is a pagination modifier: Take caps the row count, Drop skips
// leading rows. Either may be nil.
type TakeDrop struct {
	Take *uint64
	Drop *uint64
}

func (TakeDrop) isModifier() {}

// Query is an immutable SELECT representation: clauses plus an ordered
// modifier list.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Query struct {
	Projection []*Node // empty renders *
	From       []Source
	Joins      []Join
	Where      *Node
	GroupBy    []*Node
	Having     *Node
	OrderBy    []Ordering
	Distinct   bool
	Modifiers  []Modifier
}

// FirstTakeDrop returns the first pagination modifier in the list. The
// zero-limit special case is detected from this one only.
func (q *Query) FirstTakeDrop() (TakeDrop, bool) {
	for _, m := range q.Modifiers {
		if td, ok := m.(TakeDrop); ok {
			return td, true
		}
	}
	return TakeDrop{}, false
}

// LastTakeDrop returns the last pagination modifier in the list, which is
// authoritative for LIMIT/OFFSET rendering. The first/last split is
// deliberate; see the zero-limit handling in the select renderer.
func (q *Query) LastTakeDrop() (TakeDrop, bool) {
	for i := len(q.Modifiers) - 1; i >= 0; i-- {
		if td, ok := q.Modifiers[i].(TakeDrop); ok {
			return td, true
		}
	}
	return TakeDrop{}, false
}

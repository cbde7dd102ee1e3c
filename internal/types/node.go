package types

// NodeKind tags the variants of the expression tree.
type NodeKind int

const (
	KindColumn NodeKind = iota
	KindLiteral
	KindBinary
	KindUnary
	KindFunc
	KindConcat
	KindSeqNextval
	KindSeqCurrval
	KindSubquery
)

// String returns the construct name used in error messages.
func (k NodeKind) String() string {
	switch k {
	case KindColumn:
		return "Column"
	case KindLiteral:
		return "Literal"
	case KindBinary:
		return "BinaryOp"
	case KindUnary:
		return "UnaryOp"
	case KindFunc:
		return "FunctionCall"
	case KindConcat:
		return "Concat"
	case KindSeqNextval:
		return "Sequence.Nextval"
	case KindSeqCurrval:
		return "Sequence.Currval"
	case KindSubquery:
		return "Subquery"
	default:
		return "Unknown"
	}
}

// Node is one tagged expression-tree value. Nodes are built by the upstream
// DSL and consumed read-only by renderers; only the fields for the tagged
// variant are meaningful.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Node struct {
	Kind NodeKind

	// KindColumn: Table (optional) and Name.
	// KindFunc: Name is the function name.
	// KindSeqNextval/KindSeqCurrval: Name is the sequence name.
	Table *TableRef
	Name  string

	// KindLiteral: logical type and Go value (nil renders as NULL).
	Type  TypeCode
	Value any

	// KindBinary/KindUnary/KindConcat. Unary uses Left only.
	Op    string
	Left  *Node
	Right *Node

	// KindFunc arguments.
	Args []*Node

	// KindSubquery.
	Query *Query

	// Optional projection alias, emitted only when the renderer is asked
	// to rename its projection.
	As string
}

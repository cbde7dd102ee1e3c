package slick

import (
	"fmt"

	"github.com/xavier-fernandez/slick/internal/types"
)

// isValidIdent checks if a string is a safe SQL identifier: a letter or
// underscore followed by letters, digits, or underscores.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}

// TryT creates a table reference, returning an error if the name is not a
// valid identifier.
func TryT(name string) (*TableRef, error) {
	if !isValidIdent(name) {
		return nil, fmt.Errorf("invalid table name: %q", name)
	}
	return &types.TableRef{Name: name}, nil
}

// T creates a table reference. Each call returns a distinct reference; reuse
// the returned value for every mention of the same FROM entry.
func T(name string) *TableRef {
	t, err := TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a column reference, returning an error if the name is not a
// valid identifier.
func TryC(t *TableRef, name string) (*Node, error) {
	if !isValidIdent(name) {
		return nil, fmt.Errorf("invalid column name: %q", name)
	}
	return &types.Node{Kind: types.KindColumn, Table: t, Name: name}, nil
}

// C creates a column reference. A nil table renders the column bare.
func C(t *TableRef, name string) *Node {
	n, err := TryC(t, name)
	if err != nil {
		panic(err)
	}
	return n
}

// Lit creates a typed literal. A nil value renders as NULL.
func Lit(tc TypeCode, value any) *Node {
	return &types.Node{Kind: types.KindLiteral, Type: tc, Value: value}
}

// Null creates a typed NULL literal.
func Null(tc TypeCode) *Node {
	return Lit(tc, nil)
}

// Bin creates a binary operation, rendered fully parenthesized.
func Bin(op string, left, right *Node) *Node {
	return &types.Node{Kind: types.KindBinary, Op: op, Left: left, Right: right}
}

// Not creates a unary NOT.
func Not(x *Node) *Node {
	return &types.Node{Kind: types.KindUnary, Op: NOT, Left: x}
}

// Fn creates a function call.
func Fn(name string, args ...*Node) *Node {
	return &types.Node{Kind: types.KindFunc, Name: name, Args: args}
}

// Concat creates a string concatenation, rendered with the || operator.
func Concat(left, right *Node) *Node {
	return &types.Node{Kind: types.KindConcat, Left: left, Right: right}
}

// TryNextVal creates a sequence next-value expression, returning an error if
// the name is not a valid identifier.
func TryNextVal(sequence string) (*Node, error) {
	if !isValidIdent(sequence) {
		return nil, fmt.Errorf("invalid sequence name: %q", sequence)
	}
	return &types.Node{Kind: types.KindSeqNextval, Name: sequence}, nil
}

// NextVal creates a sequence next-value expression.
func NextVal(sequence string) *Node {
	n, err := TryNextVal(sequence)
	if err != nil {
		panic(err)
	}
	return n
}

// TryCurrVal creates a sequence current-value expression, returning an error
// if the name is not a valid identifier.
func TryCurrVal(sequence string) (*Node, error) {
	if !isValidIdent(sequence) {
		return nil, fmt.Errorf("invalid sequence name: %q", sequence)
	}
	return &types.Node{Kind: types.KindSeqCurrval, Name: sequence}, nil
}

// CurrVal creates a sequence current-value expression. Dialects without a
// session current value reject it at render time.
func CurrVal(sequence string) *Node {
	n, err := TryCurrVal(sequence)
	if err != nil {
		panic(err)
	}
	return n
}

// Sub wraps a query as a scalar subquery expression.
func Sub(q *Query) *Node {
	return &types.Node{Kind: types.KindSubquery, Query: q}
}

// As returns a copy of the node with a projection alias. The alias is only
// emitted in the outermost projection.
func As(n *Node, alias string) *Node {
	if !isValidIdent(alias) {
		panic(fmt.Errorf("invalid alias: %q", alias))
	}
	c := *n
	c.As = alias
	return &c
}

// Asc creates an ascending ORDER BY term.
func Asc(n *Node) Ordering {
	return types.Ordering{Expr: n}
}

// Desc creates a descending ORDER BY term.
func Desc(n *Node) Ordering {
	return types.Ordering{Expr: n, Desc: true}
}

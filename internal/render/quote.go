package render

import "strings"

// Quoter escapes and quotes identifiers for one dialect. Every rendered
// identifier (table, column, index, sequence name) goes through it; no
// renderer emits a bare identifier.
type Quoter struct {
	Start  string
	End    string
	Escape string // replacement for an embedded End character
}

// DoubleQuotes is the standard double-quote style with doubling escapes.
var DoubleQuotes = Quoter{Start: `"`, End: `"`, Escape: `""`}

// Backticks is the MySQL identifier style.
var Backticks = Quoter{Start: "`", End: "`", Escape: "``"}

// Ident quotes an identifier, escaping embedded quote-end characters.
func (q Quoter) Ident(name string) string {
	escaped := strings.ReplaceAll(name, q.End, q.Escape)
	return q.Start + escaped + q.End
}

// EscapeString escapes a string literal body by doubling single quotes.
func EscapeString(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}

// Package hsqldb provides the HSQLDB dialect renderer for slick.
//
// HSQLDB diverges from the shared engine in five places: string literals are
// typed CHAR unless cast, LIMIT 0 means "no limit", a FROM clause is
// mandatory, foreign keys cannot reference columns covered only by a unique
// index, and unspecified sequence starts default to 0.
package hsqldb

import (
	"github.com/xavier-fernandez/slick/internal/render"
	"github.com/xavier-fernandez/slick/internal/types"
)

// HSQLDB types an unadorned string literal as CHAR, which space-pads under
// concatenation. The cast width leaves headroom for concatenated results.
const stringLiteralCastWidth = "16777216"

// Renderer implements the HSQLDB dialect renderer.
type Renderer struct {
	eng *render.Engine
}

// New creates a new HSQLDB renderer. The type map is composed and checked
// for totality here; construction is the only place an unmapped logical
// type can surface.
func New() (*Renderer, error) {
	eng, err := render.NewEngine(render.Config{
		Name:   "hsqldb",
		Quoter: render.DoubleQuotes,
		Caps: render.Capabilities{
			Sequences:        true,
			SequenceCurrval:  false, // no session-scoped current value
			RejectsZeroLimit: true,  // LIMIT 0 means unlimited
		},
		TypeOverrides: map[types.TypeCode]string{
			types.TString: "LONGVARCHAR",
			types.TBytes:  "LONGVARBINARY",
			types.TUUID:   "BINARY(16)",
		},
		Expr: map[types.NodeKind]render.ExprHandler{
			types.KindLiteral:    renderLiteral,
			types.KindSeqNextval: renderNextval,
		},
		Hooks: render.Hooks{
			EmptyFrom:     emptyFrom,
			AutoIncrement: autoIncrement,
			UniqueIndex:   uniqueConstraint,
			SequenceStart: sequenceStart,
		},
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{eng: eng}, nil
}

// RenderQuery renders a SELECT statement as HSQLDB SQL.
func (r *Renderer) RenderQuery(q *types.Query) (string, error) {
	return r.eng.RenderQuery(q)
}

// BuildTableDDL builds the phase-ordered DDL statement set for a table.
func (r *Renderer) BuildTableDDL(t *types.TableSchema) (*types.DDL, error) {
	return r.eng.BuildTableDDL(t)
}

// BuildSequenceDDL builds the phase-ordered DDL statement set for a sequence.
func (r *Renderer) BuildSequenceDDL(s *types.SequenceSchema) (*types.DDL, error) {
	return r.eng.BuildSequenceDDL(s)
}

// renderLiteral wraps non-null String literals in an explicit varchar cast.
// Char literals and NULLs fall through to the shared default.
func renderLiteral(r *render.QueryRenderer, n *types.Node, b *types.Buffer) (bool, error) {
	if n.Type != types.TString || n.Value == nil {
		return false, nil
	}
	b.Append("cast(")
	if err := r.RenderExprDefault(n, b); err != nil {
		return true, err
	}
	b.Append(" as varchar(", stringLiteralCastWidth, "))")
	return true, nil
}

func renderNextval(r *render.QueryRenderer, n *types.Node, b *types.Buffer) (bool, error) {
	b.Append("(next value for ", r.Engine().Ident(n.Name), ")")
	return true, nil
}

func emptyFrom(b *types.Buffer) {
	b.Append(" FROM (VALUES (0))")
}

func autoIncrement(_ *types.ColumnSchema, b *types.Buffer) bool {
	b.Append("GENERATED BY DEFAULT AS IDENTITY(START WITH 1) PRIMARY KEY")
	return true
}

// uniqueConstraint emits a named UNIQUE constraint instead of a unique
// index: HSQLDB foreign keys cannot reference columns that are only covered
// by an index, and the constraint creates a backing index anyway.
func uniqueConstraint(e *render.Engine, t *types.TableSchema, idx *types.IndexSchema) (string, bool) {
	return "ALTER TABLE " + e.Ident(t.Name) +
		" ADD CONSTRAINT " + e.Ident(idx.Name) +
		" UNIQUE(" + e.IdentList(idx.Columns) + ")", true
}

// sequenceStart normalizes the effective start to +1 (ascending) or -1
// (descending) when unspecified; HSQLDB's native default of 0 is surprising
// for descending sequences. START WITH is omitted only when the effective
// start equals the native default exactly.
func sequenceStart(seq *types.SequenceSchema, increment int64) *int64 {
	if seq.Start != nil {
		if *seq.Start == 0 {
			return nil
		}
		return seq.Start
	}
	eff := int64(1)
	if increment < 0 {
		eff = -1
	}
	return &eff
}

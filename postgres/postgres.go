// Package postgres provides the PostgreSQL dialect renderer for slick.
package postgres

import (
	"github.com/xavier-fernandez/slick/internal/render"
	"github.com/xavier-fernandez/slick/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	eng *render.Engine
}

// New creates a new PostgreSQL renderer.
func New() (*Renderer, error) {
	eng, err := render.NewEngine(render.Config{
		Name:   "postgres",
		Quoter: render.DoubleQuotes,
		Caps: render.Capabilities{
			Sequences:       true,
			SequenceCurrval: true,
		},
		TypeOverrides: map[types.TypeCode]string{
			types.TBytes:   "BYTEA",
			types.TDecimal: "NUMERIC(21,2)",
		},
		Expr: map[types.NodeKind]render.ExprHandler{
			// PostgreSQL accesses sequences through functions, not the
			// standard NEXT VALUE FOR syntax.
			types.KindSeqNextval: renderNextval,
			types.KindSeqCurrval: renderCurrval,
		},
		Hooks: render.Hooks{
			AutoIncrement: autoIncrement,
		},
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{eng: eng}, nil
}

// RenderQuery renders a SELECT statement as PostgreSQL SQL.
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

func renderNextval(r *render.QueryRenderer, n *types.Node, b *types.Buffer) (bool, error) {
	b.Append("nextval('", r.Engine().Ident(n.Name), "')")
	return true, nil
}

func renderCurrval(r *render.QueryRenderer, n *types.Node, b *types.Buffer) (bool, error) {
	b.Append("currval('", r.Engine().Ident(n.Name), "')")
	return true, nil
}

func autoIncrement(_ *types.ColumnSchema, b *types.Buffer) bool {
	b.Append("GENERATED BY DEFAULT AS IDENTITY")
	return false
}

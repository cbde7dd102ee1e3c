// Package sqlite provides the SQLite dialect renderer for slick.
package sqlite

import (
	"github.com/xavier-fernandez/slick/internal/render"
	"github.com/xavier-fernandez/slick/internal/types"
)

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	eng *render.Engine
}

// New creates a new SQLite renderer.
func New() (*Renderer, error) {
	eng, err := render.NewEngine(render.Config{
		Name:   "sqlite",
		Quoter: render.DoubleQuotes,
		Caps: render.Capabilities{
			Sequences: false,
			// SQLite cannot ALTER TABLE ADD CONSTRAINT; foreign keys go
			// inline in CREATE TABLE.
			InlineForeignKeys: true,
		},
		TypeOverrides: map[types.TypeCode]string{
			types.TSmallInt:  "INTEGER",
			types.TBigInt:    "INTEGER",
			types.TDouble:    "REAL",
			types.TDecimal:   "NUMERIC",
			types.TChar:      "TEXT",
			types.TString:    "TEXT",
			types.TUUID:      "TEXT",
			types.TDate:      "TEXT",
			types.TTime:      "TEXT",
			types.TTimestamp: "TEXT",
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

// RenderQuery renders a SELECT statement as SQLite SQL.
func (r *Renderer) RenderQuery(q *types.Query) (string, error) {
	return r.eng.RenderQuery(q)
}

// BuildTableDDL builds the phase-ordered DDL statement set for a table.
// Foreign keys are inlined, so create phase 2 and drop phase 1 are empty.
func (r *Renderer) BuildTableDDL(t *types.TableSchema) (*types.DDL, error) {
	return r.eng.BuildTableDDL(t)
}

// BuildSequenceDDL fails: SQLite has no sequences.
func (r *Renderer) BuildSequenceDDL(s *types.SequenceSchema) (*types.DDL, error) {
	return r.eng.BuildSequenceDDL(s)
}

// SQLite auto-increment requires the column to be INTEGER PRIMARY KEY.
func autoIncrement(_ *types.ColumnSchema, b *types.Buffer) bool {
	b.Append("PRIMARY KEY AUTOINCREMENT")
	return true
}

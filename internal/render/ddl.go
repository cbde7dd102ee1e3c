package render

import (
	"strings"

	"github.com/xavier-fernandez/slick/internal/types"
)

// BuildTableDDL renders the phase-ordered statement set for one table:
// CREATE TABLE and indexes in create phase 1, foreign keys in create phase 2
// (so every referent exists first), the matching drops in reverse phases.
// Dialects that cannot ALTER TABLE ADD CONSTRAINT inline their foreign keys
// into the CREATE TABLE body instead, leaving phases 2 and drop-1 empty.
func (e *Engine) BuildTableDDL(t *types.TableSchema) (*types.DDL, error) {
	ddl := &types.DDL{}

	b := types.NewBuffer()
	b.Append("CREATE TABLE ", e.Ident(t.Name), " (")
	implicitPK := false
	for i := range t.Columns {
		if i > 0 {
			b.Append(", ")
		}
		implied, err := e.renderColumnDecl(t, &t.Columns[i], b)
		if err != nil {
			return nil, err
		}
		implicitPK = implicitPK || implied
	}
	if pk := t.PrimaryKeyColumns(); len(pk) > 1 && !implicitPK {
		b.Append(", PRIMARY KEY(", e.IdentList(pk), ")")
	}
	if e.caps.InlineForeignKeys {
		for i := range t.ForeignKeys {
			b.Append(", ", e.foreignKeyDecl(&t.ForeignKeys[i]))
		}
	}
	b.Append(")")
	ddl.CreatePhase1 = append(ddl.CreatePhase1, b.String())

	for i := range t.Indexes {
		stmt, err := e.buildIndexDDL(t, &t.Indexes[i])
		if err != nil {
			return nil, err
		}
		ddl.CreatePhase1 = append(ddl.CreatePhase1, stmt)
	}

	if !e.caps.InlineForeignKeys {
		for i := range t.ForeignKeys {
			fk := &t.ForeignKeys[i]
			ddl.CreatePhase2 = append(ddl.CreatePhase2,
				"ALTER TABLE "+e.Ident(t.Name)+" ADD "+e.foreignKeyDecl(fk))
			ddl.DropPhase1 = append(ddl.DropPhase1,
				"ALTER TABLE "+e.Ident(t.Name)+" DROP CONSTRAINT "+e.Ident(fk.Name))
		}
	}

	ddl.DropPhase2 = append(ddl.DropPhase2, "DROP TABLE "+e.Ident(t.Name))
	return ddl, nil
}

// renderColumnDecl writes one column declaration. The option order is fixed
// so output is deterministic and diffable: name, type, default, identity,
// not-null, primary key.
func (e *Engine) renderColumnDecl(t *types.TableSchema, col *types.ColumnSchema, b *types.Buffer) (impliesPK bool, err error) {
	b.Append(e.Ident(col.Name), " ", e.typemap.Name(col.Type))

	if col.Default != nil {
		lit, err := e.typemap.Literal(col.Default.Type, col.Default.Value)
		if err != nil {
			return false, err
		}
		b.Append(" DEFAULT ", lit)
	}

	if col.AutoIncrement {
		if e.hooks.AutoIncrement != nil {
			b.Append(" ")
			impliesPK = e.hooks.AutoIncrement(col, b)
		} else {
			b.Append(" GENERATED BY DEFAULT AS IDENTITY")
		}
	}

	if col.NotNull {
		b.Append(" NOT NULL")
	}

	singlePK := col.PrimaryKey && len(t.PrimaryKeyColumns()) == 1
	if singlePK && !impliesPK {
		b.Append(" PRIMARY KEY")
	}
	return impliesPK, nil
}

func (e *Engine) buildIndexDDL(t *types.TableSchema, idx *types.IndexSchema) (string, error) {
	if idx.Unique {
		if e.hooks.UniqueIndex != nil {
			if stmt, ok := e.hooks.UniqueIndex(e, t, idx); ok {
				return stmt, nil
			}
		}
		return "CREATE UNIQUE INDEX " + e.Ident(idx.Name) + " ON " + e.Ident(t.Name) +
			" (" + e.IdentList(idx.Columns) + ")", nil
	}
	return "CREATE INDEX " + e.Ident(idx.Name) + " ON " + e.Ident(t.Name) +
		" (" + e.IdentList(idx.Columns) + ")", nil
}

func (e *Engine) foreignKeyDecl(fk *types.ForeignKey) string {
	return "CONSTRAINT " + e.Ident(fk.Name) +
		" FOREIGN KEY(" + e.IdentList(fk.Columns) + ")" +
		" REFERENCES " + e.Ident(fk.RefTable) +
		"(" + e.IdentList(fk.RefColumns) + ")"
}

// IdentList quotes and comma-joins a list of identifiers.
func (e *Engine) IdentList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = e.Ident(n)
	}
	return strings.Join(quoted, ",")
}

package slick

// Renderer is the dialect-facing rendering interface. All dialect packages
// (hsqldb, postgres, mysql, sqlite, mssql) satisfy it.
type Renderer interface {
	// RenderQuery renders a SELECT statement.
	RenderQuery(q *Query) (string, error)

	// BuildTableDDL builds the phase-ordered DDL statement set for a table.
	BuildTableDDL(t *TableSchema) (*DDL, error)

	// BuildSequenceDDL builds the phase-ordered DDL statement set for a
	// sequence.
	BuildSequenceDDL(s *SequenceSchema) (*DDL, error)
}

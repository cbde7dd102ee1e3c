// Package mssql provides the SQL Server dialect renderer for slick.
package mssql

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/xavier-fernandez/slick/internal/render"
	"github.com/xavier-fernandez/slick/internal/types"
)

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	eng *render.Engine
}

// New creates a new SQL Server renderer.
func New() (*Renderer, error) {
	eng, err := render.NewEngine(render.Config{
		Name:   "mssql",
		Quoter: render.DoubleQuotes,
		Caps: render.Capabilities{
			Sequences:       true,
			SequenceCurrval: false,
		},
		TypeOverrides: map[types.TypeCode]string{
			types.TBool:      "BIT",
			types.TDouble:    "FLOAT",
			types.TString:    "VARCHAR(MAX)",
			types.TBytes:     "VARBINARY(MAX)",
			types.TUUID:      "UNIQUEIDENTIFIER",
			types.TTimestamp: "DATETIME2",
		},
		LiteralOverrides: map[types.TypeCode]render.LiteralFormatter{
			types.TBool:  bitLiteral,
			types.TBytes: binaryLiteral,
		},
		Hooks: render.Hooks{
			Pagination:    pagination,
			AutoIncrement: autoIncrement,
		},
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{eng: eng}, nil
}

// RenderQuery renders a SELECT statement as T-SQL.
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

// pagination renders OFFSET/FETCH, which SQL Server only allows after an
// ORDER BY clause.
func pagination(r *render.QueryRenderer, take, drop *uint64, b *types.Buffer) error {
	if len(r.Query().OrderBy) == 0 {
		return r.Engine().Unsupported("LIMIT/OFFSET without ORDER BY",
			"add an ORDER BY clause; OFFSET/FETCH requires one")
	}
	offset := uint64(0)
	if drop != nil {
		offset = *drop
	}
	b.Append(" OFFSET ", strconv.FormatUint(offset, 10), " ROWS")
	if take != nil {
		b.Append(" FETCH NEXT ", strconv.FormatUint(*take, 10), " ROWS ONLY")
	}
	return nil
}

func autoIncrement(_ *types.ColumnSchema, b *types.Buffer) bool {
	b.Append("IDENTITY(1,1)")
	return false
}

// T-SQL has no boolean literals; BIT columns take 1 and 0.
func bitLiteral(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("mssql: BIT literal requires bool, got %T", v)
	}
	if b {
		return "1", nil
	}
	return "0", nil
}

// T-SQL binary literals are unquoted 0x constants, not X'..'.
func binaryLiteral(v any) (string, error) {
	b, ok := v.([]byte)
	if !ok {
		return "", fmt.Errorf("mssql: binary literal requires []byte, got %T", v)
	}
	return "0x" + hex.EncodeToString(b), nil
}

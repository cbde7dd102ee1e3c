// Package mysql provides the MySQL/MariaDB dialect renderer for slick.
package mysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xavier-fernandez/slick/internal/render"
	"github.com/xavier-fernandez/slick/internal/types"
)

// MySQL has no OFFSET without LIMIT; the documented workaround is a LIMIT of
// 2^64-1 rows.
const unlimitedRows = "18446744073709551615"

// Under the default sql_mode, backslash starts an escape sequence inside a
// string literal, so quote doubling alone leaves a trailing backslash free
// to consume the closing quote.
var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// Renderer implements the MySQL dialect renderer.
type Renderer struct {
	eng *render.Engine
}

// New creates a new MySQL renderer.
func New() (*Renderer, error) {
	eng, err := render.NewEngine(render.Config{
		Name:   "mysql",
		Quoter: render.Backticks,
		Caps: render.Capabilities{
			Sequences: false,
		},
		TypeOverrides: map[types.TypeCode]string{
			types.TBytes:     "LONGBLOB",
			types.TString:    "VARCHAR(255)",
			types.TUUID:      "BINARY(16)",
			types.TTimestamp: "DATETIME",
		},
		LiteralOverrides: map[types.TypeCode]render.LiteralFormatter{
			types.TChar:   stringLiteral,
			types.TString: stringLiteral,
			types.TUUID:   stringLiteral,
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

// RenderQuery renders a SELECT statement as MySQL SQL.
func (r *Renderer) RenderQuery(q *types.Query) (string, error) {
	return r.eng.RenderQuery(q)
}

// BuildTableDDL builds the phase-ordered DDL statement set for a table.
func (r *Renderer) BuildTableDDL(t *types.TableSchema) (*types.DDL, error) {
	return r.eng.BuildTableDDL(t)
}

// BuildSequenceDDL fails: MySQL has no sequences.
func (r *Renderer) BuildSequenceDDL(s *types.SequenceSchema) (*types.DDL, error) {
	return r.eng.BuildSequenceDDL(s)
}

func pagination(_ *render.QueryRenderer, take, drop *uint64, b *types.Buffer) error {
	if take == nil && drop != nil {
		b.Append(" LIMIT ", unlimitedRows, " OFFSET ", strconv.FormatUint(*drop, 10))
		return nil
	}
	render.DefaultPagination(take, drop, b)
	return nil
}

func autoIncrement(_ *types.ColumnSchema, b *types.Buffer) bool {
	b.Append("AUTO_INCREMENT")
	return false
}

func stringLiteral(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("mysql: string literal requires string, got %T", v)
	}
	return "'" + literalEscaper.Replace(s) + "'", nil
}

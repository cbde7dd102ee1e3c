package slick

import (
	"fmt"
	"strings"

	"github.com/xavier-fernandez/slick/internal/types"
	"github.com/zoobzio/dbml"
)

// Slick is a schema-validated instance of the query constructors. Table and
// column references created through it are checked against a DBML project,
// and table references are cached so every reference to one table shares
// pointer identity.
type Slick struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column
	refs    map[string]*types.TableRef
}

// NewFromDBML creates a Slick instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*Slick, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Slick{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
		refs:    make(map[string]*types.TableRef),
	}
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}
	return s, nil
}

// TryT returns the shared table reference for a schema table, or an error if
// the table is not in the schema.
func (s *Slick) TryT(name string) (*TableRef, error) {
	if _, ok := s.tables[name]; !ok {
		return nil, fmt.Errorf("table %q not found in schema", name)
	}
	if ref, ok := s.refs[name]; ok {
		return ref, nil
	}
	ref := &types.TableRef{Name: name}
	s.refs[name] = ref
	return ref, nil
}

// T returns the shared table reference for a schema table.
func (s *Slick) T(name string) *TableRef {
	t, err := s.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a column reference validated against the schema.
func (s *Slick) TryC(table, column string) (*Node, error) {
	cols, ok := s.columns[table]
	if !ok {
		return nil, fmt.Errorf("table %q not found in schema", table)
	}
	if _, ok := cols[column]; !ok {
		return nil, fmt.Errorf("column %q not found in table %q", column, table)
	}
	ref, err := s.TryT(table)
	if err != nil {
		return nil, err
	}
	return &types.Node{Kind: types.KindColumn, Table: ref, Name: column}, nil
}

// C creates a column reference validated against the schema.
func (s *Slick) C(table, column string) *Node {
	n, err := s.TryC(table, column)
	if err != nil {
		panic(err)
	}
	return n
}

// Tables converts the DBML project to DDL table descriptions. DBML carries
// names and column types only; primary keys, indexes, and foreign keys are
// added by the caller on the returned schemas.
func (s *Slick) Tables() []TableSchema {
	out := make([]types.TableSchema, 0, len(s.project.Tables))
	for _, table := range s.project.Tables {
		ts := types.TableSchema{Name: table.Name}
		for _, col := range table.Columns {
			ts.Columns = append(ts.Columns, types.ColumnSchema{
				Name: col.Name,
				Type: typeCodeForDBML(col.Type),
			})
		}
		out = append(out, ts)
	}
	return out
}

// typeCodeForDBML maps a DBML column type string to a logical type. Unknown
// types map to TString, the widest text type.
func typeCodeForDBML(dbmlType string) TypeCode {
	switch strings.ToLower(dbmlType) {
	case "bool", "boolean":
		return types.TBool
	case "smallint", "int2":
		return types.TSmallInt
	case "int", "integer", "int4":
		return types.TInt
	case "bigint", "int8":
		return types.TBigInt
	case "double", "double precision", "float", "float8", "real":
		return types.TDouble
	case "numeric", "decimal":
		return types.TDecimal
	case "char":
		return types.TChar
	case "varchar", "text":
		return types.TString
	case "blob", "bytea", "binary", "varbinary":
		return types.TBytes
	case "date":
		return types.TDate
	case "time":
		return types.TTime
	case "timestamp", "datetime":
		return types.TTimestamp
	case "uuid":
		return types.TUUID
	default:
		return types.TString
	}
}

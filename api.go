// Package slick renders typed query trees and schema descriptions to
// vendor-specific SQL.
//
// The package builds an expression tree from constructor calls, then renders
// it through a dialect renderer. Everything vendors agree on lives in a shared
// engine; each dialect package configures only its divergences.
//
// # Basic Usage
//
// Queries are assembled with the package-level constructors and a fluent
// builder:
//
//	import "github.com/xavier-fernandez/slick/hsqldb"
//
//	users := slick.T("users")
//	q := slick.Select(users).
//		Project(slick.C(users, "id"), slick.C(users, "name")).
//		Where(slick.Bin(slick.GT, slick.C(users, "age"), slick.Lit(slick.TInt, 18))).
//		Take(10).
//		Build()
//
//	r, err := hsqldb.New()
//	sql, err := r.RenderQuery(q)
//	// SELECT t1."id", t1."name" FROM "users" t1 WHERE (t1."age" > 18) LIMIT 10
//
// # Multi-Dialect Support
//
// Rendering goes through the Renderer interface. Available dialects: hsqldb,
// postgres, mysql, sqlite, mssql. The same query tree renders on all of them;
// a dialect that cannot express a construct fails with an
// UnsupportedFeatureError naming the construct and the dialect.
//
// # Schema-Validated Usage
//
// For schema safety, create a Slick instance from a DBML project:
//
//	instance, err := slick.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the table/column doesn't exist in the schema
//	users := instance.T("users")
//	name := instance.C("users", "name")
//
// # DDL
//
// Table and sequence descriptions render to phase-ordered statement sets so
// mutually referencing tables can be created and dropped in bulk: tables and
// indexes first, then foreign keys; drops run in reverse.
package slick

import (
	"github.com/xavier-fernandez/slick/internal/render"
	"github.com/xavier-fernandez/slick/internal/types"
)

// Node is one expression-tree value, built by the constructors in this
// package and consumed read-only by renderers.
type Node = types.Node

// Query is an immutable SELECT representation.
type Query = types.Query

// TableRef identifies a base table. Alias resolution is by pointer identity,
// so reuse the same TableRef for every reference to one FROM entry.
type TableRef = types.TableRef

// Source is a FROM-clause item: a *TableRef or a nested *Query.
type Source = types.Source

// Join represents a JOIN clause.
type Join = types.Join

// JoinKind represents the type of SQL join.
type JoinKind = types.JoinKind

// Re-export join kind constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	CrossJoin = types.CrossJoin
)

// Ordering is one ORDER BY term.
type Ordering = types.Ordering

// Modifier is a typed query modifier.
type Modifier = types.Modifier

// TakeDrop is the pagination modifier. The last one in a query's modifier
// list drives the LIMIT/OFFSET clause.
type TakeDrop = types.TakeDrop

// TypeCode is the logical column/literal type.
type TypeCode = types.TypeCode

// Re-export logical type constants for public API.
const (
	TBool      = types.TBool
	TSmallInt  = types.TSmallInt
	TInt       = types.TInt
	TBigInt    = types.TBigInt
	TDouble    = types.TDouble
	TDecimal   = types.TDecimal
	TChar      = types.TChar
	TString    = types.TString
	TBytes     = types.TBytes
	TDate      = types.TDate
	TTime      = types.TTime
	TTimestamp = types.TTimestamp
	TUUID      = types.TUUID
)

// Binary and unary operator strings accepted by Bin and Not.
const (
	EQ  = "="
	NE  = "<>"
	GT  = ">"
	GE  = ">="
	LT  = "<"
	LE  = "<="
	AND = "AND"
	OR  = "OR"
	ADD = "+"
	SUB = "-"
	MUL = "*"
	DIV = "/"
	NOT = "NOT"
)

// TableSchema describes one table for DDL generation.
type TableSchema = types.TableSchema

// ColumnSchema describes one column of a TableSchema.
type ColumnSchema = types.ColumnSchema

// IndexSchema describes one index of a TableSchema.
type IndexSchema = types.IndexSchema

// ForeignKey describes one foreign key of a TableSchema.
type ForeignKey = types.ForeignKey

// SequenceSchema describes a sequence for DDL generation.
type SequenceSchema = types.SequenceSchema

// DDL is a phase-ordered statement set.
type DDL = types.DDL

// UnsupportedFeatureError reports a construct the target dialect cannot
// express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// UnmappedTypeError reports a logical type with no dialect type name. It can
// only surface at renderer construction.
type UnmappedTypeError = render.UnmappedTypeError

package hsqldb

import (
	"errors"
	"testing"

	"github.com/xavier-fernandez/slick"
	"github.com/xavier-fernandez/slick/internal/render"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}
	return r
}

func assertQuery(t *testing.T, r *Renderer, q *slick.Query, want string) {
	t.Helper()
	got, err := r.RenderQuery(q)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != want {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", want, got)
	}
}

// =============================================================================
// Pagination
// =============================================================================

func TestPaginationForms(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")

	tests := []struct {
		name  string
		build func() *slick.Query
		want  string
	}{
		{
			"TakeAndDrop",
			func() *slick.Query { return slick.Select(users).TakeDrop(2, 1).Build() },
			`SELECT * FROM "users" t1 LIMIT 2 OFFSET 1`,
		},
		{
			"TakeOnly",
			func() *slick.Query { return slick.Select(users).Take(2).Build() },
			`SELECT * FROM "users" t1 LIMIT 2`,
		},
		{
			"DropOnly",
			func() *slick.Query { return slick.Select(users).Drop(1).Build() },
			`SELECT * FROM "users" t1 OFFSET 1`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertQuery(t, r, tt.build(), tt.want)
		})
	}
}

// HSQLDB reads LIMIT 0 as "no limit", so a zero take becomes a zero-row wrap.
func TestZeroTakeRewrite(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).Project(slick.C(users, "id")).Take(0).Build()
	assertQuery(t, r, q,
		`SELECT * FROM (SELECT t1."id" FROM "users" t1) WHERE FALSE`)
}

func TestZeroTakeNotFirstRendersLiteral(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).Take(5).Take(0).Build()
	assertQuery(t, r, q, `SELECT * FROM "users" t1 LIMIT 0`)
}

func TestLastPaginationModifierWins(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).Take(1).Take(5).Build()
	assertQuery(t, r, q, `SELECT * FROM "users" t1 LIMIT 5`)
}

// =============================================================================
// Mandatory FROM
// =============================================================================

func TestEmptyFromSynthesized(t *testing.T) {
	r := newRenderer(t)
	q := slick.Select().Project(slick.Lit(slick.TInt, 1)).Build()
	assertQuery(t, r, q, `SELECT 1 FROM (VALUES (0))`)
}

// =============================================================================
// String literal typing
// =============================================================================

func TestStringLiteralCast(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).Project(slick.Lit(slick.TString, "x")).Build()
	assertQuery(t, r, q,
		`SELECT cast('x' as varchar(16777216)) FROM "users" t1`)
}

func TestCharLiteralNotCast(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).Project(slick.Lit(slick.TChar, "x")).Build()
	assertQuery(t, r, q, `SELECT 'x' FROM "users" t1`)
}

func TestNullStringLiteralNotCast(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).Project(slick.Null(slick.TString)).Build()
	assertQuery(t, r, q, `SELECT NULL FROM "users" t1`)
}

func TestStringLiteralCastInComparison(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	q := slick.Select(users).
		Project(slick.C(users, "id")).
		Where(slick.Bin(slick.EQ, slick.C(users, "name"), slick.Lit(slick.TString, "it's"))).
		Build()
	assertQuery(t, r, q,
		`SELECT t1."id" FROM "users" t1 WHERE (t1."name" = cast('it''s' as varchar(16777216)))`)
}

// =============================================================================
// Sequences
// =============================================================================

func TestNextvalParenthesizedForm(t *testing.T) {
	r := newRenderer(t)
	q := slick.Select().Project(slick.NextVal("order_seq")).Build()
	assertQuery(t, r, q,
		`SELECT (next value for "order_seq") FROM (VALUES (0))`)
}

func TestCurrvalUnsupported(t *testing.T) {
	r := newRenderer(t)
	q := slick.Select().Project(slick.CurrVal("order_seq")).Build()
	_, err := r.RenderQuery(q)
	var ufe render.UnsupportedFeatureError
	if !errors.As(err, &ufe) {
		t.Fatalf("Expected UnsupportedFeatureError, got %v", err)
	}
	if ufe.Dialect != "hsqldb" || ufe.Feature != "Sequence.Currval" {
		t.Errorf("Unexpected error fields: %+v", ufe)
	}
}

func TestSequenceStartNormalization(t *testing.T) {
	r := newRenderer(t)

	seq := func(start *int64, increment *int64) *slick.SequenceSchema {
		return &slick.SequenceSchema{Name: "s", Start: start, Increment: increment}
	}
	i64 := func(v int64) *int64 { return &v }

	tests := []struct {
		name string
		in   *slick.SequenceSchema
		want string
	}{
		{"AscendingDefault", seq(nil, nil), `CREATE SEQUENCE "s" START WITH 1`},
		{"DescendingDefault", seq(nil, i64(-2)), `CREATE SEQUENCE "s" INCREMENT BY -2 START WITH -1`},
		{"ExplicitStart", seq(i64(5), nil), `CREATE SEQUENCE "s" START WITH 5`},
		{"ExplicitZeroOmitted", seq(i64(0), nil), `CREATE SEQUENCE "s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ddl, err := r.BuildSequenceDDL(tt.in)
			if err != nil {
				t.Fatalf("BuildSequenceDDL failed: %v", err)
			}
			if ddl.CreatePhase1[0] != tt.want {
				t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", tt.want, ddl.CreatePhase1[0])
			}
		})
	}
}

// =============================================================================
// DDL
// =============================================================================

func TestAutoIncrementImpliesPrimaryKey(t *testing.T) {
	r := newRenderer(t)
	table := &slick.TableSchema{
		Name: "users",
		Columns: []slick.ColumnSchema{
			{Name: "id", Type: slick.TBigInt, PrimaryKey: true, AutoIncrement: true},
			{Name: "name", Type: slick.TString, NotNull: true},
		},
	}
	ddl, err := r.BuildTableDDL(table)
	if err != nil {
		t.Fatalf("BuildTableDDL failed: %v", err)
	}
	want := `CREATE TABLE "users" ("id" BIGINT GENERATED BY DEFAULT AS IDENTITY(START WITH 1) PRIMARY KEY, "name" LONGVARCHAR NOT NULL)`
	if ddl.CreatePhase1[0] != want {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", want, ddl.CreatePhase1[0])
	}
}

func TestUniqueIndexBecomesConstraint(t *testing.T) {
	r := newRenderer(t)
	table := &slick.TableSchema{
		Name: "users",
		Columns: []slick.ColumnSchema{
			{Name: "email", Type: slick.TString},
			{Name: "age", Type: slick.TInt},
		},
		Indexes: []slick.IndexSchema{
			{Name: "users_email_idx", Columns: []string{"email"}, Unique: true},
			{Name: "users_age_idx", Columns: []string{"age"}},
		},
	}
	ddl, err := r.BuildTableDDL(table)
	if err != nil {
		t.Fatalf("BuildTableDDL failed: %v", err)
	}
	if ddl.CreatePhase1[1] != `ALTER TABLE "users" ADD CONSTRAINT "users_email_idx" UNIQUE("email")` {
		t.Errorf("Unexpected unique statement: %s", ddl.CreatePhase1[1])
	}
	if ddl.CreatePhase1[2] != `CREATE INDEX "users_age_idx" ON "users" ("age")` {
		t.Errorf("Unexpected index statement: %s", ddl.CreatePhase1[2])
	}
}

func TestTypeOverrides(t *testing.T) {
	r := newRenderer(t)
	table := &slick.TableSchema{
		Name: "blobs",
		Columns: []slick.ColumnSchema{
			{Name: "body", Type: slick.TString},
			{Name: "data", Type: slick.TBytes},
			{Name: "key", Type: slick.TUUID},
			{Name: "n", Type: slick.TInt},
		},
	}
	ddl, err := r.BuildTableDDL(table)
	if err != nil {
		t.Fatalf("BuildTableDDL failed: %v", err)
	}
	want := `CREATE TABLE "blobs" ("body" LONGVARCHAR, "data" LONGVARBINARY, "key" BINARY(16), "n" INTEGER)`
	if ddl.CreatePhase1[0] != want {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", want, ddl.CreatePhase1[0])
	}
}

// =============================================================================
// Determinism
// =============================================================================

func TestRenderDeterministic(t *testing.T) {
	r := newRenderer(t)
	users := slick.T("users")
	posts := slick.T("posts")
	q := slick.Select(users).
		Join(slick.InnerJoin, posts,
			slick.Bin(slick.EQ, slick.C(posts, "user_id"), slick.C(users, "id"))).
		Project(slick.C(users, "name"), slick.C(posts, "title")).
		Where(slick.Bin(slick.GT, slick.C(posts, "views"), slick.Lit(slick.TInt, 10))).
		OrderBy(slick.Desc(slick.C(posts, "views"))).
		Take(20).
		Build()

	first, err := r.RenderQuery(q)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := r.RenderQuery(q)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if again != first {
			t.Fatalf("Non-deterministic render:\nFirst: %s\nAgain: %s", first, again)
		}
	}
}

// Package render implements the shared SQL rendering engine. A dialect is an
// Engine configured with a type map, capability flags, expression overrides,
// and clause hooks; everything vendors agree on lives here once, and the
// override points carry only the vendor differences.
package render

import (
	"github.com/xavier-fernandez/slick/internal/types"
)

// ExprHandler intercepts rendering of one node kind. Returning handled=false
// falls through to the shared default, so an override never has to cover
// every shape of its node kind.
type ExprHandler func(r *QueryRenderer, n *types.Node, b *types.Buffer) (bool, error)

// Hooks are the clause-level override points. Nil hooks use the shared
// default behavior.
type Hooks struct {
	// EmptyFrom appends a synthetic FROM clause when the shared
	// FROM-building step produced no text (e.g. SELECT 1 on vendors that
	// require a FROM).
	EmptyFrom func(b *types.Buffer)

	// Pagination renders the trailing pagination clause from the
	// authoritative (last) pagination modifier. The default emits
	// LIMIT/OFFSET.
	Pagination func(r *QueryRenderer, take, drop *uint64, b *types.Buffer) error

	// Trailing appends vendor-specific clauses after pagination.
	Trailing func(r *QueryRenderer, b *types.Buffer) error

	// AutoIncrement renders the identity clause of a column declaration and
	// reports whether it implies PRIMARY KEY, suppressing the explicit one.
	AutoIncrement func(col *types.ColumnSchema, b *types.Buffer) (impliesPK bool)

	// UniqueIndex renders the statement for a unique index request.
	// Returning handled=false falls back to CREATE UNIQUE INDEX.
	UniqueIndex func(e *Engine, t *types.TableSchema, idx *types.IndexSchema) (string, bool)

	// SequenceStart computes the effective START WITH value, or nil to omit
	// the clause. The default emits an explicit start verbatim.
	SequenceStart func(seq *types.SequenceSchema, increment int64) *int64
}

// Config assembles a dialect.
type Config struct {
	Name             string
	Quoter           Quoter
	Caps             Capabilities
	TypeOverrides    map[types.TypeCode]string
	LiteralOverrides map[types.TypeCode]LiteralFormatter
	Expr             map[types.NodeKind]ExprHandler
	Hooks            Hooks
}

// Engine is one dialect's rendering engine. It is immutable after
// construction and safe for concurrent use; per-render state lives in
// QueryRenderer instances.
type Engine struct {
	name    string
	quoter  Quoter
	caps    Capabilities
	typemap *TypeMap
	expr    map[types.NodeKind]ExprHandler
	hooks   Hooks
}

// NewEngine composes a dialect engine. Type-map totality is checked here so
// a constructed engine can never hit an unmapped type mid-render.
func NewEngine(cfg Config) (*Engine, error) {
	tm, err := NewTypeMap(cfg.Name, cfg.TypeOverrides, cfg.LiteralOverrides)
	if err != nil {
		return nil, err
	}
	q := cfg.Quoter
	if q.Start == "" {
		q = DoubleQuotes
	}
	return &Engine{
		name:    cfg.Name,
		quoter:  q,
		caps:    cfg.Caps,
		typemap: tm,
		expr:    cfg.Expr,
		hooks:   cfg.Hooks,
	}, nil
}

// Name returns the dialect name used in error messages.
func (e *Engine) Name() string { return e.name }

// Caps returns the dialect capability flags.
func (e *Engine) Caps() Capabilities { return e.caps }

// Types returns the composed type map.
func (e *Engine) Types() *TypeMap { return e.typemap }

// Ident quotes an identifier with the dialect's quoting style.
func (e *Engine) Ident(name string) string { return e.quoter.Ident(name) }

// Unsupported builds an UnsupportedFeatureError for this dialect.
func (e *Engine) Unsupported(feature string, hint ...string) error {
	return NewUnsupportedFeatureError(e.name, feature, hint...)
}

// RenderQuery renders a full SELECT statement. A fresh renderer, buffer, and
// naming scope are created per call and discarded afterwards.
func (e *Engine) RenderQuery(q *types.Query) (string, error) {
	b := types.NewBuffer()
	r := newQueryRenderer(e, q, types.NewScope(), nil)
	if err := r.RenderSelect(b, true); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderExprStandalone renders a single expression outside a query, e.g. for
// tests or DEFAULT clauses. Column references cannot resolve aliases here.
func (e *Engine) RenderExprStandalone(n *types.Node) (string, error) {
	b := types.NewBuffer()
	r := newQueryRenderer(e, &types.Query{}, types.NewScope(), nil)
	if err := r.RenderExpr(n, b); err != nil {
		return "", err
	}
	return b.String(), nil
}

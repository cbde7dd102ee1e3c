package render

import (
	"fmt"
	"strconv"

	"github.com/xavier-fernandez/slick/internal/types"
)

// QueryRenderer renders one query for one pass. Subqueries spawn a child
// renderer through the same construction, chained to the parent's naming
// scope; the renderer holds no state beyond the pass.
type QueryRenderer struct {
	eng    *Engine
	query  *types.Query
	scope  *types.Scope
	parent *QueryRenderer
}

func newQueryRenderer(e *Engine, q *types.Query, scope *types.Scope, parent *QueryRenderer) *QueryRenderer {
	return &QueryRenderer{eng: e, query: q, scope: scope, parent: parent}
}

// Query returns the query under render, for hooks that need clause context.
func (r *QueryRenderer) Query() *types.Query { return r.query }

// Engine returns the dialect engine.
func (r *QueryRenderer) Engine() *Engine { return r.eng }

// RenderSelect renders the SELECT body into the buffer. renaming controls
// whether projection aliases are emitted.
//
// When the dialect rejects LIMIT 0, the first pagination modifier is checked
// for a zero limit and the whole statement is rewritten as a zero-row wrap;
// otherwise the last modifier drives the pagination clause. The first/last
// asymmetry is intentional and preserved as-is.
func (r *QueryRenderer) RenderSelect(b *types.Buffer, renaming bool) error {
	if r.eng.caps.RejectsZeroLimit {
		if td, ok := r.query.FirstTakeDrop(); ok && td.Take != nil && *td.Take == 0 {
			b.Append("SELECT * FROM (")
			if err := r.renderSelectBody(b, renaming, false); err != nil {
				return err
			}
			b.Append(") WHERE FALSE")
			return nil
		}
	}
	return r.renderSelectBody(b, renaming, true)
}

func (r *QueryRenderer) renderSelectBody(b *types.Buffer, renaming, withPagination bool) error {
	q := r.query

	// A join has nothing to attach to without a FROM source, and the join
	// text would also mask the empty-FROM hook.
	if len(q.From) == 0 && len(q.Joins) > 0 {
		return fmt.Errorf("%s: cannot render a JOIN without a FROM source", r.eng.name)
	}

	// Aliases are assigned up front so every clause, including the
	// projection rendered first, resolves sources consistently.
	for _, src := range q.From {
		r.scope.Assign(src)
	}
	for _, join := range q.Joins {
		r.scope.Assign(join.Source)
	}

	b.Append("SELECT ")
	if q.Distinct {
		b.Append("DISTINCT ")
	}
	if err := r.renderProjection(b, renaming); err != nil {
		return err
	}

	fromMark := b.Mark()
	for i, src := range q.From {
		if i == 0 {
			b.Append(" FROM ")
		} else {
			b.Append(", ")
		}
		if err := r.renderSource(src, b); err != nil {
			return err
		}
	}
	for _, join := range q.Joins {
		b.Append(" ", string(join.Kind), " ")
		if err := r.renderSource(join.Source, b); err != nil {
			return err
		}
		if join.Kind != types.CrossJoin && join.On != nil {
			b.Append(" ON ")
			if err := r.RenderExpr(join.On, b); err != nil {
				return err
			}
		}
	}
	if b.EmptySince(fromMark) && r.eng.hooks.EmptyFrom != nil {
		r.eng.hooks.EmptyFrom(b)
	}

	if q.Where != nil {
		b.Append(" WHERE ")
		if err := r.RenderExpr(q.Where, b); err != nil {
			return err
		}
	}

	if len(q.GroupBy) > 0 {
		b.Append(" GROUP BY ")
		for i, g := range q.GroupBy {
			if i > 0 {
				b.Append(", ")
			}
			if err := r.RenderExpr(g, b); err != nil {
				return err
			}
		}
	}

	if q.Having != nil {
		b.Append(" HAVING ")
		if err := r.RenderExpr(q.Having, b); err != nil {
			return err
		}
	}

	if len(q.OrderBy) > 0 {
		b.Append(" ORDER BY ")
		for i := range q.OrderBy {
			if i > 0 {
				b.Append(", ")
			}
			if err := r.RenderExpr(q.OrderBy[i].Expr, b); err != nil {
				return err
			}
			if q.OrderBy[i].Desc {
				b.Append(" DESC")
			}
		}
	}

	if withPagination {
		if err := r.renderPagination(b); err != nil {
			return err
		}
	}

	if r.eng.hooks.Trailing != nil {
		if err := r.eng.hooks.Trailing(r, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *QueryRenderer) renderProjection(b *types.Buffer, renaming bool) error {
	if len(r.query.Projection) == 0 {
		b.Append("*")
		return nil
	}
	for i, n := range r.query.Projection {
		if i > 0 {
			b.Append(", ")
		}
		if err := r.RenderExpr(n, b); err != nil {
			return err
		}
		if renaming && n.As != "" {
			b.Append(" AS ", r.eng.Ident(n.As))
		}
	}
	return nil
}

func (r *QueryRenderer) renderSource(src types.Source, b *types.Buffer) error {
	alias := r.scope.Assign(src)
	switch s := src.(type) {
	case *types.TableRef:
		b.Append(r.eng.Ident(s.Name), " ", alias)
		return nil
	case *types.Query:
		b.Append("(")
		child := newQueryRenderer(r.eng, s, r.scope.Child(), r)
		if err := child.RenderSelect(b, false); err != nil {
			return err
		}
		b.Append(") ", alias)
		return nil
	default:
		return r.eng.Unsupported("FromSource")
	}
}

func (r *QueryRenderer) renderPagination(b *types.Buffer) error {
	td, ok := r.query.LastTakeDrop()
	if !ok || (td.Take == nil && td.Drop == nil) {
		return nil
	}
	if r.eng.hooks.Pagination != nil {
		return r.eng.hooks.Pagination(r, td.Take, td.Drop, b)
	}
	DefaultPagination(td.Take, td.Drop, b)
	return nil
}

// DefaultPagination emits the LIMIT/OFFSET clause shared by most dialects.
// Exported so dialect pagination hooks can delegate to it.
func DefaultPagination(take, drop *uint64, b *types.Buffer) {
	switch {
	case take != nil && drop != nil:
		b.Append(" LIMIT ", strconv.FormatUint(*take, 10), " OFFSET ", strconv.FormatUint(*drop, 10))
	case take != nil:
		b.Append(" LIMIT ", strconv.FormatUint(*take, 10))
	case drop != nil:
		b.Append(" OFFSET ", strconv.FormatUint(*drop, 10))
	}
}

package slick

import (
	"github.com/xavier-fernandez/slick/internal/types"
)

// Builder assembles a Query through fluent calls. The zero Builder is not
// usable; start with Select.
type Builder struct {
	q types.Query
}

// Select starts a query builder over the given FROM sources. No sources is
// allowed; dialects that require a FROM clause synthesize one.
func Select(from ...Source) *Builder {
	return &Builder{q: types.Query{From: from}}
}

// Project sets the projection. An empty projection renders *.
func (b *Builder) Project(nodes ...*Node) *Builder {
	b.q.Projection = append(b.q.Projection, nodes...)
	return b
}

// Distinct marks the query SELECT DISTINCT.
func (b *Builder) Distinct() *Builder {
	b.q.Distinct = true
	return b
}

// Join adds a join clause. on is ignored for CROSS JOIN.
func (b *Builder) Join(kind JoinKind, src Source, on *Node) *Builder {
	b.q.Joins = append(b.q.Joins, types.Join{Kind: kind, Source: src, On: on})
	return b
}

// Where adds a filter. Multiple calls combine with AND.
func (b *Builder) Where(cond *Node) *Builder {
	if b.q.Where == nil {
		b.q.Where = cond
	} else {
		b.q.Where = Bin(AND, b.q.Where, cond)
	}
	return b
}

// GroupBy adds grouping expressions.
func (b *Builder) GroupBy(nodes ...*Node) *Builder {
	b.q.GroupBy = append(b.q.GroupBy, nodes...)
	return b
}

// Having adds a group filter. Multiple calls combine with AND.
func (b *Builder) Having(cond *Node) *Builder {
	if b.q.Having == nil {
		b.q.Having = cond
	} else {
		b.q.Having = Bin(AND, b.q.Having, cond)
	}
	return b
}

// OrderBy adds ordering terms.
func (b *Builder) OrderBy(terms ...Ordering) *Builder {
	b.q.OrderBy = append(b.q.OrderBy, terms...)
	return b
}

// Take appends a pagination modifier capping the row count.
func (b *Builder) Take(n uint64) *Builder {
	b.q.Modifiers = append(b.q.Modifiers, types.TakeDrop{Take: &n})
	return b
}

// Drop appends a pagination modifier skipping leading rows.
func (b *Builder) Drop(n uint64) *Builder {
	b.q.Modifiers = append(b.q.Modifiers, types.TakeDrop{Drop: &n})
	return b
}

// TakeDrop appends a combined pagination modifier.
func (b *Builder) TakeDrop(take, drop uint64) *Builder {
	b.q.Modifiers = append(b.q.Modifiers, types.TakeDrop{Take: &take, Drop: &drop})
	return b
}

// Build returns the assembled query. The builder must not be reused after
// Build.
func (b *Builder) Build() *Query {
	return &b.q
}

package render

import (
	"fmt"

	"github.com/xavier-fernandez/slick/internal/types"
)

// RenderExpr renders one expression node. The dialect's override map is
// consulted first; a handler that declines (or is absent) falls through to
// the shared default, so unrecognized node shapes always render.
func (r *QueryRenderer) RenderExpr(n *types.Node, b *types.Buffer) error {
	if h, ok := r.eng.expr[n.Kind]; ok {
		handled, err := h(r, n, b)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}
	return r.RenderExprDefault(n, b)
}

// RenderExprDefault renders a node with the shared default for its kind.
// Overrides call it to delegate after adjusting the surrounding text.
func (r *QueryRenderer) RenderExprDefault(n *types.Node, b *types.Buffer) error {
	switch n.Kind {
	case types.KindColumn:
		return r.renderColumn(n, b)
	case types.KindLiteral:
		s, err := r.eng.typemap.Literal(n.Type, n.Value)
		if err != nil {
			return err
		}
		b.Append(s)
		return nil
	case types.KindBinary:
		b.Append("(")
		if err := r.RenderExpr(n.Left, b); err != nil {
			return err
		}
		b.Append(" ", n.Op, " ")
		if err := r.RenderExpr(n.Right, b); err != nil {
			return err
		}
		b.Append(")")
		return nil
	case types.KindUnary:
		b.Append("(", n.Op, " ")
		if err := r.RenderExpr(n.Left, b); err != nil {
			return err
		}
		b.Append(")")
		return nil
	case types.KindConcat:
		b.Append("(")
		if err := r.RenderExpr(n.Left, b); err != nil {
			return err
		}
		b.Append(" || ")
		if err := r.RenderExpr(n.Right, b); err != nil {
			return err
		}
		b.Append(")")
		return nil
	case types.KindFunc:
		b.Append(n.Name, "(")
		for i, arg := range n.Args {
			if i > 0 {
				b.Append(", ")
			}
			if err := r.RenderExpr(arg, b); err != nil {
				return err
			}
		}
		b.Append(")")
		return nil
	case types.KindSeqNextval:
		if !r.eng.caps.Sequences {
			return r.eng.Unsupported(types.KindSeqNextval.String())
		}
		b.Append("NEXT VALUE FOR ", r.eng.Ident(n.Name))
		return nil
	case types.KindSeqCurrval:
		if !r.eng.caps.Sequences || !r.eng.caps.SequenceCurrval {
			return r.eng.Unsupported(types.KindSeqCurrval.String())
		}
		b.Append("CURRENT VALUE FOR ", r.eng.Ident(n.Name))
		return nil
	case types.KindSubquery:
		b.Append("(")
		child := newQueryRenderer(r.eng, n.Query, r.scope.Child(), r)
		if err := child.RenderSelect(b, false); err != nil {
			return err
		}
		b.Append(")")
		return nil
	default:
		return fmt.Errorf("%s: unknown expression node kind %d", r.eng.name, n.Kind)
	}
}

func (r *QueryRenderer) renderColumn(n *types.Node, b *types.Buffer) error {
	if n.Table != nil {
		if alias := r.scope.Lookup(n.Table); alias != "" {
			b.Append(alias, ".", r.eng.Ident(n.Name))
			return nil
		}
		// Table not in any enclosing FROM; qualify by name.
		b.Append(r.eng.Ident(n.Table.Name), ".", r.eng.Ident(n.Name))
		return nil
	}
	b.Append(r.eng.Ident(n.Name))
	return nil
}

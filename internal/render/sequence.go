package render

import (
	"strconv"

	"github.com/xavier-fernandez/slick/internal/types"
)

// BuildSequenceDDL renders CREATE/DROP SEQUENCE. Optional clauses are
// emitted in a fixed order (INCREMENT BY, MINVALUE, MAXVALUE, START WITH,
// CYCLE), each only when supplied or computed as non-default. The CREATE
// goes in create phase 1 and the DROP in drop phase 2, mirroring the table
// foreign-key phasing even though sequences have no phase-2 dependencies.
func (e *Engine) BuildSequenceDDL(seq *types.SequenceSchema) (*types.DDL, error) {
	if !e.caps.Sequences {
		return nil, e.Unsupported("CREATE SEQUENCE")
	}

	increment := int64(1)
	if seq.Increment != nil {
		increment = *seq.Increment
	}

	b := types.NewBuffer()
	b.Append("CREATE SEQUENCE ", e.Ident(seq.Name))
	if seq.Increment != nil {
		b.Append(" INCREMENT BY ", strconv.FormatInt(*seq.Increment, 10))
	}
	if seq.MinValue != nil {
		b.Append(" MINVALUE ", strconv.FormatInt(*seq.MinValue, 10))
	}
	if seq.MaxValue != nil {
		b.Append(" MAXVALUE ", strconv.FormatInt(*seq.MaxValue, 10))
	}
	start := seq.Start
	if e.hooks.SequenceStart != nil {
		start = e.hooks.SequenceStart(seq, increment)
	}
	if start != nil {
		b.Append(" START WITH ", strconv.FormatInt(*start, 10))
	}
	if seq.Cycle {
		b.Append(" CYCLE")
	}

	return &types.DDL{
		CreatePhase1: []string{b.String()},
		DropPhase2:   []string{"DROP SEQUENCE " + e.Ident(seq.Name)},
	}, nil
}

package types

import "strings"

// Buffer is the append-only SQL text accumulator threaded through one render
// pass. It is never read mid-build except through Mark/EmptySince, which let
// a renderer check whether a clause-building step produced any text.
type Buffer struct {
	frags []string
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds fragments to the buffer.
func (b *Buffer) Append(frags ...string) {
	b.frags = append(b.frags, frags...)
}

// Mark returns an opaque position usable with EmptySince.
func (b *Buffer) Mark() int {
	return len(b.frags)
}

// EmptySince reports whether nothing was appended after the mark.
func (b *Buffer) EmptySince(mark int) bool {
	return len(b.frags) == mark
}

// String flattens the buffer into the final SQL text.
func (b *Buffer) String() string {
	return strings.Join(b.frags, "")
}

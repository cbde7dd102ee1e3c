package render

// Capabilities describes the SQL features supported by a dialect. The base
// engine consults these before rendering a construct; a false flag turns the
// construct into an UnsupportedFeatureError or a workaround rewrite rather
// than incorrect SQL.
type Capabilities struct {
	Sequences         bool // CREATE SEQUENCE and next-value expressions
	SequenceCurrval   bool // session-scoped current sequence value
	RejectsZeroLimit  bool // LIMIT 0 does not reliably yield zero rows
	InlineForeignKeys bool // no ALTER TABLE ADD CONSTRAINT; FKs inline in CREATE TABLE
}

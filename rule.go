package jsonschema

// Rule is one compiled keyword: given the instance path and value it was
// invoked at, it appends zero or more records to acc. Every hand-written
// Rule performs a single, direct append on failure — there is no
// generated boilerplate to later strip, so the "single-error
// specialization" optimization spec.md §9 describes falls out of the
// implementation for free rather than needing a dedicated pass.
type Rule func(path Path, value Value, acc *ErrorAccumulator)

// ErrorRecord is one raw validation failure, keyed by the keyword that
// raised it, before any Program-level error/result wrapping.
type ErrorRecord struct {
	Path    Path
	Keyword string
	Value   Value
	Code    string
	Message string
	Params  map[string]any
}

// ErrorAccumulator is the append-only sink every Rule writes into. A
// fresh one is threaded through each top-level Validate call; anyOf/oneOf/not
// additionally use a scratch accumulator (see anyOf.go, oneOf.go, not.go) to inspect a
// branch's outcome before deciding whether to keep or discard it.
type ErrorAccumulator struct {
	records []ErrorRecord
}

// Add appends one record.
func (a *ErrorAccumulator) Add(r ErrorRecord) {
	a.records = append(a.records, r)
}

// Len reports how many records have been collected so far.
func (a *ErrorAccumulator) Len() int { return len(a.records) }

// Records returns the accumulated records. The caller must not mutate
// the returned slice.
func (a *ErrorAccumulator) Records() []ErrorRecord { return a.records }

// Reset empties the accumulator for reuse.
func (a *ErrorAccumulator) Reset() { a.records = a.records[:0] }

package jsonschema

// CompiledProgram is the executable form a schema compiles down to (§4.3).
// Validate calls Run once per instance; Run never allocates a result
// object of its own, it only appends to the caller's accumulator.
type CompiledProgram interface {
	Run(path Path, value Value, acc *ErrorAccumulator)

	// IsNoop reports whether this program can never produce an error,
	// letting a parent keyword (items, properties, additionalProperties)
	// skip invoking it entirely rather than recursing into dead work.
	// Ported from the Python original's Program.__bool__.
	IsNoop() bool
}

// emptyProgram is the compiled form of `{}` or any schema all of whose
// keywords were pruned as dead: it runs nothing.
type emptyProgram struct{}

func (emptyProgram) Run(Path, Value, *ErrorAccumulator) {}
func (emptyProgram) IsNoop() bool                       { return true }

var theEmptyProgram CompiledProgram = emptyProgram{}

// singleRuleProgram is the compiled form of a schema with exactly one
// live rule overall, general or type-specific — the common case for
// leaf schemas like `{"type": "string"}`. It skips table dispatch
// entirely; a lone type-specific rule is wrapped by optimize() in a
// single tag check, so it still only runs against its own tag.
type singleRuleProgram struct {
	rule Rule
}

func (p singleRuleProgram) Run(path Path, value Value, acc *ErrorAccumulator) {
	p.rule(path, value, acc)
}
func (singleRuleProgram) IsNoop() bool { return false }

// generalOnlyProgram is the compiled form of a schema whose only live
// rules are general (enum/type) — there is no type-specific table to
// dispatch into, so the instance's tag is never even computed.
type generalOnlyProgram struct {
	rules []Rule
}

func (p generalOnlyProgram) Run(path Path, value Value, acc *ErrorAccumulator) {
	for _, r := range p.rules {
		r(path, value, acc)
	}
}
func (generalOnlyProgram) IsNoop() bool { return false }

// typeOnlyProgram is the compiled form of a schema with no live general
// rules, only type-specific ones, dispatched on the instance's own tag.
type typeOnlyProgram struct {
	byTag [7][]Rule
}

func (p typeOnlyProgram) Run(path Path, value Value, acc *ErrorAccumulator) {
	for _, r := range p.byTag[value.Tag()] {
		r(path, value, acc)
	}
}
func (typeOnlyProgram) IsNoop() bool { return false }

// fullProgram is the general case: general rules run unconditionally,
// followed by the type-specific rules selected by the instance's tag.
type fullProgram struct {
	general []Rule
	byTag   [7][]Rule
}

func (p fullProgram) Run(path Path, value Value, acc *ErrorAccumulator) {
	for _, r := range p.general {
		r(path, value, acc)
	}
	for _, r := range p.byTag[value.Tag()] {
		r(path, value, acc)
	}
}
func (fullProgram) IsNoop() bool { return false }

package jsonschema

// Applicability is a bitmask of the instance tags a keyword can ever fire
// against. The compiler uses it twice: to decide, at schema-compile time,
// whether a keyword is dead given the schema's own declared `type` (§4.1
// step 4), and to route a compiled rule into the general table or one of
// the per-tag type-specific tables (§4.3).
type Applicability uint8

const (
	AppliesNull Applicability = 1 << iota
	AppliesBool
	AppliesInt
	AppliesNum
	AppliesStr
	AppliesArr
	AppliesObj
)

// AppliesAny matches every tag; keywords like `enum`/`type` that apply
// regardless of instance type use it.
const AppliesAny = AppliesNull | AppliesBool | AppliesInt | AppliesNum | AppliesStr | AppliesArr | AppliesObj

// AppliesNumeric matches Int and Num, the pair `IsNumeric` recognizes.
const AppliesNumeric = AppliesInt | AppliesNum

// Has reports whether tag t is included in the mask.
func (a Applicability) Has(t Tag) bool {
	return a&tagMask(t) != 0
}

// Disjoint reports whether a and b share no tag, the test dead-rule
// pruning runs a keyword's Applicability against the schema's declared
// `type` set.
func (a Applicability) Disjoint(b Applicability) bool {
	return a&b == 0
}

func tagMask(t Tag) Applicability {
	switch t {
	case TagNull:
		return AppliesNull
	case TagBool:
		return AppliesBool
	case TagInt:
		return AppliesInt
	case TagNum:
		return AppliesNum
	case TagStr:
		return AppliesStr
	case TagArr:
		return AppliesArr
	case TagObj:
		return AppliesObj
	default:
		return 0
	}
}

// KeywordDef declares one entry of a dialect's keyword table: the JSON
// schema key it recognizes, the tags it can ever apply to, and the
// constructor that turns a schema member's value into a compiled Rule.
//
// The keyword table itself is an ordered slice, not a map, because §3.4
// requires type-specific rule-list iteration to follow the dialect's
// declared order rather than the schema's own JSON member order, and a Go
// map's iteration order is randomized — a slice is the only vehicle that
// keeps this invariant stable across runs.
type KeywordDef struct {
	Name         string
	Applies      Applicability
	IsGeneral    bool
	Construct    KeywordConstructor
}

// KeywordConstructor compiles one schema member into a Rule. siblings
// gives the constructor read access to every recognized member of the
// same schema object (by name), so e.g. `minimum`'s constructor can look
// up whether `exclusiveMinimum` was also declared. ctx threads the
// compiler's depth counter and dialect through recursive compilation of
// sub-schemas (allOf/items/properties/...).
//
// A constructor returns (nil, nil) when the keyword contributes no Rule
// of its own (it was only consulted by a sibling, e.g. exclusiveMinimum),
// and a non-nil error only for genuine compile-time failures (malformed
// regex, sub-schema compile failure, depth exceeded) which the caller
// wraps into a *SchemaError.
type KeywordConstructor func(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error)

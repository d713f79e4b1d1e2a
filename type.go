package jsonschema

import "strings"

// typeMatchMask maps one declared `type` name to the instance tags it
// accepts. "integer" matches only Int; "number" matches both Int and Num,
// since any numeric literal satisfies "number" regardless of whether its
// source form had a fractional part.
func typeMatchMask(name string) Applicability {
	switch name {
	case "null":
		return AppliesNull
	case "boolean":
		return AppliesBool
	case "integer":
		return AppliesInt
	case "number":
		return AppliesNumeric
	case "string":
		return AppliesStr
	case "array":
		return AppliesArr
	case "object":
		return AppliesObj
	default:
		return 0
	}
}

// constructType compiles the `type` keyword. It is general: it always
// runs, since it constrains the instance's own tag rather than being
// gated by it.
func constructType(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	var names []string
	switch configured.Tag() {
	case TagStr:
		names = []string{configured.Str()}
	case TagArr:
		if len(configured.Arr()) == 0 {
			return nil, invalidKeywordValue(path, "type")
		}
		for _, item := range configured.Arr() {
			if item.Tag() != TagStr {
				return nil, invalidKeywordValue(path, "type")
			}
			names = append(names, item.Str())
		}
	default:
		return nil, invalidKeywordValue(path, "type")
	}

	var mask Applicability
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, invalidKeywordValue(path, "type")
		}
		seen[n] = true
		m := typeMatchMask(n)
		if m == 0 {
			return nil, invalidKeywordValue(path, "type")
		}
		mask |= m
	}

	expected := strings.Join(names, ", ")

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if mask.Has(value.Tag()) {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "type",
			Value:   configured,
			Code:    "type_mismatch",
			Message: "value must be of type " + expected,
			Params:  map[string]any{"expected": expected},
		})
	}, nil
}

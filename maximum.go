package jsonschema

// constructMaximum compiles `maximum`, reading `exclusiveMaximum`'s raw
// boolean directly off the shared siblings object.
func constructMaximum(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if !configured.IsNumeric() {
		return nil, invalidKeywordValue(path, "maximum")
	}
	max := configured.AsFloat64()

	if minMember, ok := siblings.Get("minimum"); ok && minMember.IsNumeric() && max < minMember.AsFloat64() {
		return nil, invalidKeywordValue(path, "maximum")
	}

	exclusive := false
	if em, ok := siblings.Get("exclusiveMaximum"); ok && em.Tag() == TagBool {
		exclusive = em.Bool()
	}
	op := "<="
	if exclusive {
		op = "<"
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		v := value.AsFloat64()
		ok := v < max
		if !exclusive {
			ok = ok || v == max
		}
		if ok {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "maximum",
			Value:   configured,
			Code:    "maximum",
			Message: "value is above the configured maximum",
			Params:  map[string]any{"op": op, "max": max},
		})
	}, nil
}

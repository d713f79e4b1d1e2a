package jsonschema

// constructMinimum compiles `minimum`. Draft-04's `exclusiveMinimum` is a
// boolean modifier on `minimum` rather than its own numeric bound, so its
// raw value is read directly off the shared siblings object rather than
// through any compiled sibling rule.
func constructMinimum(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if !configured.IsNumeric() {
		return nil, invalidKeywordValue(path, "minimum")
	}
	min := configured.AsFloat64()

	exclusive := false
	if em, ok := siblings.Get("exclusiveMinimum"); ok && em.Tag() == TagBool {
		exclusive = em.Bool()
	}
	op := ">="
	if exclusive {
		op = ">"
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		v := value.AsFloat64()
		ok := v > min
		if !exclusive {
			ok = ok || v == min
		}
		if ok {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "minimum",
			Value:   configured,
			Code:    "minimum",
			Message: "value is below the configured minimum",
			Params:  map[string]any{"op": op, "min": min},
		})
	}, nil
}

package jsonschema

// constructMinItems compiles `minItems`.
func constructMinItems(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	n, ok := nonNegativeInt(configured)
	if !ok {
		return nil, invalidKeywordValue(path, "minItems")
	}
	if n == 0 {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if len(value.Arr()) >= n {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "minItems",
			Value:   configured,
			Code:    "min_items",
			Message: "array must have at least the minimum number of items",
			Params:  map[string]any{"min": n},
		})
	}, nil
}

package jsonschema

// constructMaxItems compiles `maxItems`.
func constructMaxItems(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	n, ok := nonNegativeInt(configured)
	if !ok {
		return nil, invalidKeywordValue(path, "maxItems")
	}
	if err := checkMaxAtLeastMin(siblings, "minItems", n, path, "maxItems"); err != nil {
		return nil, err
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if len(value.Arr()) <= n {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "maxItems",
			Value:   configured,
			Code:    "max_items",
			Message: "array must have at most the maximum number of items",
			Params:  map[string]any{"max": n},
		})
	}, nil
}

package jsonschema

// constructMinProperties compiles `minProperties`.
func constructMinProperties(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	n, ok := nonNegativeInt(configured)
	if !ok {
		return nil, invalidKeywordValue(path, "minProperties")
	}
	if n == 0 {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if value.Obj().Len() >= n {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "minProperties",
			Value:   configured,
			Code:    "min_properties",
			Message: "object must have at least the minimum number of properties",
			Params:  map[string]any{"min": n, "count": value.Obj().Len()},
		})
	}, nil
}

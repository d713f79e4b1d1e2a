package jsonschema

// constructMaxProperties compiles `maxProperties`.
func constructMaxProperties(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	n, ok := nonNegativeInt(configured)
	if !ok {
		return nil, invalidKeywordValue(path, "maxProperties")
	}
	if err := checkMaxAtLeastMin(siblings, "minProperties", n, path, "maxProperties"); err != nil {
		return nil, err
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if value.Obj().Len() <= n {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "maxProperties",
			Value:   configured,
			Code:    "max_properties",
			Message: "object must have at most the maximum number of properties",
			Params:  map[string]any{"max": n, "count": value.Obj().Len()},
		})
	}, nil
}

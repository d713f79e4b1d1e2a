package jsonschema

// constructEnum compiles the `enum` keyword using the recursive
// structural Value.Equal rather than any language-default equality, per
// the explicit instruction to never rely on one (reflect.DeepEqual on two
// Values would treat objects with the same members in a different key
// order as unequal).
func constructEnum(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagArr || len(configured.Arr()) == 0 {
		return nil, invalidKeywordValue(path, "enum")
	}
	allowed := configured.Arr()
	for i := 1; i < len(allowed); i++ {
		for j := 0; j < i; j++ {
			if allowed[i].Equal(allowed[j]) {
				return nil, invalidKeywordValue(path, "enum")
			}
		}
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		for _, candidate := range allowed {
			if value.Equal(candidate) {
				return
			}
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "enum",
			Value:   configured,
			Code:    "enum_mismatch",
			Message: "value must be one of the enumerated values",
		})
	}, nil
}

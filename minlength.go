package jsonschema

import "unicode/utf8"

// constructMinLength compiles `minLength`. String length is counted in
// Unicode code points, not bytes, per the Draft-04 spec.
func constructMinLength(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	n, ok := nonNegativeInt(configured)
	if !ok {
		return nil, invalidKeywordValue(path, "minLength")
	}
	if n == 0 {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if utf8.RuneCountInString(value.Str()) >= n {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "minLength",
			Value:   configured,
			Code:    "min_length",
			Message: "string must be at least the minimum length",
			Params:  map[string]any{"min": n},
		})
	}, nil
}

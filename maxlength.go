package jsonschema

import "unicode/utf8"

// constructMaxLength compiles `maxLength`.
func constructMaxLength(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	n, ok := nonNegativeInt(configured)
	if !ok {
		return nil, invalidKeywordValue(path, "maxLength")
	}
	if err := checkMaxAtLeastMin(siblings, "minLength", n, path, "maxLength"); err != nil {
		return nil, err
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if utf8.RuneCountInString(value.Str()) <= n {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "maxLength",
			Value:   configured,
			Code:    "max_length",
			Message: "string must be at most the maximum length",
			Params:  map[string]any{"max": n},
		})
	}, nil
}

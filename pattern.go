package jsonschema

import "regexp"

// constructPattern compiles `pattern`, caching the compiled, unanchored
// *regexp.Regexp on the closure at compile time rather than recompiling
// it on every instance.
func constructPattern(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagStr {
		return nil, invalidKeywordValue(path, "pattern")
	}
	re, err := regexp.Compile(configured.Str())
	if err != nil {
		return nil, newSchemaError(path, ErrInvalidRegex)
	}
	pattern := configured.Str()

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if re.MatchString(value.Str()) {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "pattern",
			Value:   configured,
			Code:    "pattern_mismatch",
			Message: "string does not match pattern",
			Params:  map[string]any{"pattern": pattern},
		})
	}, nil
}

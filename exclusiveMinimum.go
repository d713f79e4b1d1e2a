package jsonschema

// constructExclusiveMinimum never emits its own Rule: in Draft-04,
// `exclusiveMinimum` is a boolean modifier consumed directly by
// `minimum`'s constructor (see minimum.go), not an independent numeric
// bound the way later drafts define it.
func constructExclusiveMinimum(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error) {
	if value.Tag() != TagBool {
		return nil, invalidKeywordValue(path, "exclusiveMinimum")
	}
	return nil, nil
}

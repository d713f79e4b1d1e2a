package jsonschema

// constructExclusiveMaximum never emits its own Rule; see
// constructExclusiveMinimum.
func constructExclusiveMaximum(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error) {
	if value.Tag() != TagBool {
		return nil, invalidKeywordValue(path, "exclusiveMaximum")
	}
	return nil, nil
}

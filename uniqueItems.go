package jsonschema

// constructUniqueItems compiles `uniqueItems`. Duplicate detection uses
// DuplicateIndices, the pairwise structural-equality scan ported from
// the Python original's non_unique_items, rather than a serialize-and-
// compare normalization trick: one error is raised per duplicate index,
// in ascending order, located at that index in the instance path.
func constructUniqueItems(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagBool || !configured.Bool() {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		for _, j := range DuplicateIndices(value.Arr()) {
			acc.Add(ErrorRecord{
				Path:    path.WithIndex(j),
				Keyword: "uniqueItems",
				Value:   configured,
				Code:    "unique_items",
				Message: "array items must be unique",
			})
		}
	}, nil
}

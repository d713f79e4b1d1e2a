package jsonschema

// constructRequired compiles `required`.
func constructRequired(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagArr || len(configured.Arr()) == 0 {
		return nil, invalidKeywordValue(path, "required")
	}
	names := make([]string, 0, len(configured.Arr()))
	seen := make(map[string]bool, len(configured.Arr()))
	for _, item := range configured.Arr() {
		if item.Tag() != TagStr || item.Str() == "" || seen[item.Str()] {
			return nil, invalidKeywordValue(path, "required")
		}
		seen[item.Str()] = true
		names = append(names, item.Str())
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		obj := value.Obj()
		var missing []string
		for _, name := range names {
			if _, ok := obj.Get(name); !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "required",
			Value:   configured,
			Code:    "required_missing",
			Message: "object is missing required properties",
			Params:  map[string]any{"properties": missing},
		})
	}, nil
}

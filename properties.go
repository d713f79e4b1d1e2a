package jsonschema

// constructProperties compiles `properties`: each declared key that is
// actually present in the instance is validated against its own
// sub-schema; members the instance never has are simply skipped, since
// Draft-04's `properties` carries no default-value semantics.
func constructProperties(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error) {
	if value.Tag() != TagObj || value.Obj().Len() == 0 {
		return nil, invalidKeywordValue(path, "properties")
	}
	declared := value.Obj()
	for _, key := range declared.Keys() {
		if key == "" {
			return nil, invalidKeywordValue(path, "properties")
		}
	}

	keys := make([]string, 0, declared.Len())
	programs := make(map[string]CompiledProgram, declared.Len())
	for _, key := range declared.Keys() {
		sub, _ := declared.Get(key)
		prog, err := ctx.CompileSub(sub, path.With(key))
		if err != nil {
			return nil, err
		}
		if prog.IsNoop() {
			continue
		}
		programs[key] = prog
		keys = append(keys, key)
	}
	if len(programs) == 0 {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		obj := value.Obj()
		for _, key := range keys {
			member, ok := obj.Get(key)
			if !ok {
				continue
			}
			programs[key].Run(path.WithKey(key), member, acc)
		}
	}, nil
}

package jsonschema

import "strconv"

// constructAllOf compiles the `allOf` keyword. Every sub-schema runs
// unconditionally against the same instance; any error any of them
// raises is appended directly, so an instance failing three of five
// branches surfaces all three underlying keyword failures rather than
// one generic summary.
func constructAllOf(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error) {
	if value.Tag() != TagArr || len(value.Arr()) == 0 {
		return nil, invalidKeywordValue(path, "allOf")
	}
	items := value.Arr()
	programs := make([]CompiledProgram, 0, len(items))
	for i, sub := range items {
		prog, err := ctx.CompileSub(sub, path.With(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if prog.IsNoop() {
			continue
		}
		programs = append(programs, prog)
	}
	if len(programs) == 0 {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		for _, prog := range programs {
			prog.Run(path, value, acc)
		}
	}, nil
}

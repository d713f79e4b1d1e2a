package jsonschema

import "strconv"

// constructOneOf compiles the `oneOf` keyword: exactly one branch must
// pass. Each branch runs against its own scratch accumulator; like
// anyOf, per-branch failures are discarded in favor of a single summary
// error, since "zero passed" and "more than one passed" are both failure
// modes a per-branch error wouldn't describe correctly.
func constructOneOf(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagArr || len(configured.Arr()) == 0 {
		return nil, invalidKeywordValue(path, "oneOf")
	}
	items := configured.Arr()
	programs := make([]CompiledProgram, 0, len(items))
	for i, sub := range items {
		prog, err := ctx.CompileSub(sub, path.With(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		programs = append(programs, prog)
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		passed := 0
		for _, prog := range programs {
			if prog.IsNoop() {
				passed++
				continue
			}
			var scratch ErrorAccumulator
			prog.Run(path, value, &scratch)
			if scratch.Len() == 0 {
				passed++
			}
		}
		if passed == 1 {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "oneOf",
			Value:   configured,
			Code:    "oneof_failed",
			Message: "value must match exactly one of the required schemas",
		})
	}, nil
}

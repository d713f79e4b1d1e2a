package jsonschema

import "strconv"

// constructAnyOf compiles the `anyOf` keyword. Each branch runs against a
// scratch accumulator so a passing branch's (nonexistent) errors never
// reach the caller; if every branch fails, one summary error is raised
// and every branch's own failures are discarded, since none of them
// individually describes why the instance is invalid.
func constructAnyOf(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagArr || len(configured.Arr()) == 0 {
		return nil, invalidKeywordValue(path, "anyOf")
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
		for _, prog := range programs {
			if prog.IsNoop() {
				return
			}
			var scratch ErrorAccumulator
			prog.Run(path, value, &scratch)
			if scratch.Len() == 0 {
				return
			}
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "anyOf",
			Value:   configured,
			Code:    "anyof_failed",
			Message: "value does not match any of the required schemas",
		})
	}, nil
}

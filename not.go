package jsonschema

// constructNot compiles the `not` keyword: the instance is valid here
// iff the sub-schema, run against a scratch accumulator, produces at
// least one error.
func constructNot(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	prog, err := ctx.CompileSub(configured, path)
	if err != nil {
		return nil, err
	}
	if prog.IsNoop() {
		return func(path Path, value Value, acc *ErrorAccumulator) {
			acc.Add(ErrorRecord{
				Path:    path,
				Keyword: "not",
				Value:   configured,
				Code:    "not_failed",
				Message: "value must not match the given schema",
			})
		}, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		var scratch ErrorAccumulator
		prog.Run(path, value, &scratch)
		if scratch.Len() > 0 {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "not",
			Value:   configured,
			Code:    "not_failed",
			Message: "value must not match the given schema",
		})
	}, nil
}

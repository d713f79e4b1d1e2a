package jsonschema

import "strconv"

// constructItems compiles the Draft-04 `items` keyword, which is
// polymorphic over its own schema value in a way later drafts split into
// separate `prefixItems`/`items` keywords:
//   - an array value is tuple validation: each index gets its own
//     sub-schema, and indices beyond the tuple's length are left to
//     `additionalItems`;
//   - an object/boolean value is uniform validation: every element of
//     the instance array is checked against the one sub-schema.
func constructItems(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error) {
	if value.Tag() == TagArr {
		tuple := value.Arr()
		programs := make([]CompiledProgram, 0, len(tuple))
		for i, sub := range tuple {
			prog, err := ctx.CompileSub(sub, path.With(strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			programs = append(programs, prog)
		}

		return func(path Path, value Value, acc *ErrorAccumulator) {
			arr := value.Arr()
			n := len(programs)
			if len(arr) < n {
				n = len(arr)
			}
			for i := 0; i < n; i++ {
				if programs[i].IsNoop() {
					continue
				}
				programs[i].Run(path.WithIndex(i), arr[i], acc)
			}
		}, nil
	}

	prog, err := ctx.CompileSub(value, path)
	if err != nil {
		return nil, err
	}
	if prog.IsNoop() {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		for i, item := range value.Arr() {
			prog.Run(path.WithIndex(i), item, acc)
		}
	}, nil
}

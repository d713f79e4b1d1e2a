package jsonschema

// constructAdditionalItems compiles `additionalItems`. It only has an
// effect when the sibling `items` keyword is itself in tuple (array)
// form; with a schema/boolean `items`, every element is already covered
// and `additionalItems` is inert, per the Draft-04 core spec.
func constructAdditionalItems(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	itemsMember, ok := siblings.Get("items")
	if !ok || itemsMember.Tag() != TagArr {
		return nil, nil
	}
	tupleLen := len(itemsMember.Arr())

	if configured.Tag() == TagBool {
		if configured.Bool() {
			return nil, nil
		}
		return func(path Path, value Value, acc *ErrorAccumulator) {
			arr := value.Arr()
			for i := tupleLen; i < len(arr); i++ {
				acc.Add(ErrorRecord{
					Path:    path.WithIndex(i),
					Keyword: "additionalItems",
					Value:   configured,
					Code:    "additional_items_not_allowed",
					Message: "array has more items than allowed",
				})
			}
		}, nil
	}

	prog, err := ctx.CompileSub(configured, path)
	if err != nil {
		return nil, err
	}
	if prog.IsNoop() {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		arr := value.Arr()
		for i := tupleLen; i < len(arr); i++ {
			prog.Run(path.WithIndex(i), arr[i], acc)
		}
	}, nil
}

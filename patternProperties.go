package jsonschema

import "regexp"

// constructPatternProperties compiles `patternProperties`, caching one
// compiled *regexp.Regexp per pattern at compile time (like the
// teacher's own compilePatterns), rather than re-compiling on every
// Validate call. A key already covered by the sibling `properties`
// keyword is skipped (read directly off `siblings`, per §9's resolution
// of the `properties`-vs-`rules.keys()` ambiguity): `properties` owns
// any key it declares, and `patternProperties` only ever sees the rest.
func constructPatternProperties(ctx *compileCtx, value Value, siblings *Object, path SchemaPath) (Rule, error) {
	if value.Tag() != TagObj || value.Obj().Len() == 0 {
		return nil, invalidKeywordValue(path, "patternProperties")
	}
	declared := value.Obj()

	var declaredProperties map[string]bool
	if propsMember, ok := siblings.Get("properties"); ok && propsMember.Tag() == TagObj {
		keys := propsMember.Obj().Keys()
		declaredProperties = make(map[string]bool, len(keys))
		for _, k := range keys {
			declaredProperties[k] = true
		}
	}

	type entry struct {
		re      *regexp.Regexp
		program CompiledProgram
	}
	entries := make([]entry, 0, declared.Len())
	for _, pattern := range declared.Keys() {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, newSchemaError(path.With(pattern), ErrInvalidRegex)
		}
		sub, _ := declared.Get(pattern)
		prog, err := ctx.CompileSub(sub, path.With(pattern))
		if err != nil {
			return nil, err
		}
		if prog.IsNoop() {
			continue
		}
		entries = append(entries, entry{re: re, program: prog})
	}
	if len(entries) == 0 {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		obj := value.Obj()
		for _, key := range obj.Keys() {
			if declaredProperties[key] {
				continue
			}
			member, _ := obj.Get(key)
			for _, e := range entries {
				if e.re.MatchString(key) {
					e.program.Run(path.WithKey(key), member, acc)
				}
			}
		}
	}, nil
}

package jsonschema

import "regexp"

// constructAdditionalProperties compiles `additionalProperties`. The
// covered-key set is the union of the sibling `properties`' own declared
// keys and every key any `patternProperties` pattern matches, consulted
// directly off the shared siblings object so this keyword's behavior
// never depends on construction order.
func constructAdditionalProperties(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	var declaredKeys map[string]bool
	if propsMember, ok := siblings.Get("properties"); ok && propsMember.Tag() == TagObj {
		keys := propsMember.Obj().Keys()
		declaredKeys = make(map[string]bool, len(keys))
		for _, k := range keys {
			declaredKeys[k] = true
		}
	}

	var patterns []*regexp.Regexp
	if ppMember, ok := siblings.Get("patternProperties"); ok && ppMember.Tag() == TagObj {
		for _, pattern := range ppMember.Obj().Keys() {
			if re, err := regexp.Compile(pattern); err == nil {
				patterns = append(patterns, re)
			}
		}
	}

	covered := func(key string) bool {
		if declaredKeys[key] {
			return true
		}
		for _, re := range patterns {
			if re.MatchString(key) {
				return true
			}
		}
		return false
	}

	if configured.Tag() == TagBool {
		if configured.Bool() {
			return nil, nil
		}
		return func(path Path, value Value, acc *ErrorAccumulator) {
			obj := value.Obj()
			var extra []string
			for _, key := range obj.Keys() {
				if !covered(key) {
					extra = append(extra, key)
				}
			}
			if len(extra) == 0 {
				return
			}
			acc.Add(ErrorRecord{
				Path:    path,
				Keyword: "additionalProperties",
				Value:   configured,
				Code:    "additional_properties_not_allowed",
				Message: "object has properties not allowed by the schema",
				Params:  map[string]any{"properties": extra},
			})
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
		obj := value.Obj()
		for _, key := range obj.Keys() {
			if covered(key) {
				continue
			}
			member, _ := obj.Get(key)
			prog.Run(path.WithKey(key), member, acc)
		}
	}, nil
}

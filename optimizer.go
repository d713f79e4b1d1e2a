package jsonschema

// optimize folds a compiled rule set into the cheapest CompiledProgram
// shape that can run it (§4.3/§9). There is no separate textual
// optimization pass over a generated form: the IR builder (compiler.go)
// calls this directly as the very last step of compiling a schema
// object, so the choice is made once, at compile time, and Run never
// has to re-discover it per instance.
func optimize(general []Rule, byTag [7][]Rule) CompiledProgram {
	totalTyped := 0
	liveTags := 0
	for _, rs := range byTag {
		if len(rs) > 0 {
			totalTyped += len(rs)
			liveTags++
		}
	}

	total := len(general) + totalTyped
	if total == 0 {
		return theEmptyProgram
	}
	if total == 1 {
		if len(general) == 1 {
			return singleRuleProgram{rule: general[0]}
		}
		for t, rs := range byTag {
			if len(rs) == 1 {
				tag, rule := Tag(t), rs[0]
				return singleRuleProgram{rule: func(path Path, value Value, acc *ErrorAccumulator) {
					if value.Tag() == tag {
						rule(path, value, acc)
					}
				}}
			}
		}
	}
	if totalTyped == 0 {
		return generalOnlyProgram{rules: general}
	}
	if len(general) == 0 {
		return typeOnlyProgram{byTag: byTag}
	}
	return fullProgram{general: general, byTag: byTag}
}

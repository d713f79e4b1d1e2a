package jsonschema

// constructFormat compiles `format`. Unlike later drafts where format is
// commonly treated as an annotation, Draft-04 formats recognized here are
// asserted: an instance string failing a known check is an error. Format
// names this package doesn't recognize are unknown and never fail — a
// deliberate departure from the original's Format.validate, which raises
// SchemaError on any value outside the six recognized formats; unknown
// keywords are forward-compatible no-ops elsewhere in this dialect (§6),
// and format is treated the same way here rather than as a special case.
func constructFormat(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagStr {
		return nil, invalidKeywordValue(path, "format")
	}
	name := configured.Str()
	check, known := formatCheckers[name]
	if !known {
		return nil, nil
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		if value.Tag() != TagStr {
			return
		}
		if check(value.Str()) {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "format",
			Value:   configured,
			Code:    "format_invalid",
			Message: "string does not match the configured format",
			Params:  map[string]any{"format": name},
		})
	}, nil
}

package jsonschema

import "math/big"

// constructMultipleOf compiles `multipleOf`. Per §4.2 the configured
// value must be a positive integer (the original's MultipleOf.validate
// raises SchemaError when type(self.value) != int); a schema declaring
// a fractional divisor like 2.5 fails to compile rather than silently
// running. Divisibility itself is checked with big.Rat exact arithmetic
// rather than floating-point modulo, the same technique the teacher's
// own evaluateMultipleOf uses to avoid false negatives from binary
// floating-point rounding on the instance side (e.g. 0.3 / 0.1).
func constructMultipleOf(ctx *compileCtx, configured Value, siblings *Object, path SchemaPath) (Rule, error) {
	if configured.Tag() != TagInt || configured.Int() <= 0 {
		return nil, invalidKeywordValue(path, "multipleOf")
	}
	divisor := new(big.Rat).SetFloat64(configured.AsFloat64())
	if divisor == nil {
		return nil, invalidKeywordValue(path, "multipleOf")
	}

	return func(path Path, value Value, acc *ErrorAccumulator) {
		v := new(big.Rat).SetFloat64(value.AsFloat64())
		if v == nil {
			return
		}
		quotient := new(big.Rat).Quo(v, divisor)
		if quotient.IsInt() {
			return
		}
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "multipleOf",
			Value:   configured,
			Code:    "multiple_of",
			Message: "value is not a multiple of the configured divisor",
			Params:  map[string]any{"divisor": configured.Int()},
		})
	}, nil
}

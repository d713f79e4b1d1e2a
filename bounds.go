package jsonschema

// nonNegativeInt reads a schema-side size bound (minItems, maxLength, ...)
// which must be a non-negative integer per the Draft-04 meta-schema.
func nonNegativeInt(value Value) (int, bool) {
	if value.Tag() != TagInt {
		return 0, false
	}
	i := value.Int()
	if i < 0 || i > int64(^uint(0)>>1) {
		return 0, false
	}
	return int(i), true
}

// checkMaxAtLeastMin enforces the "max ≥ min if both present" schema rule
// shared by minItems/maxItems, minLength/maxLength and
// minProperties/maxProperties: it reads the sibling min-side keyword
// directly off siblings and compares it against the already-parsed max
// bound, rather than threading a live reference between the two
// keywords' constructors.
func checkMaxAtLeastMin(siblings *Object, minKeyword string, max int, path SchemaPath, maxKeyword string) error {
	minMember, ok := siblings.Get(minKeyword)
	if !ok {
		return nil
	}
	min, ok := nonNegativeInt(minMember)
	if !ok {
		return nil
	}
	if max < min {
		return invalidKeywordValue(path, maxKeyword)
	}
	return nil
}

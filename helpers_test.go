package jsonschema

import "testing"

// mustCompile compiles schemaJSON with a fresh Validator and fails the
// test immediately on a SchemaError, since every table-driven keyword
// test in this package exercises already-valid schemas.
func mustCompile(t *testing.T, schemaJSON string) *CompiledSchema {
	t.Helper()
	v := NewValidator()
	cs, err := v.Compile([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	return cs
}

// validationErrors runs instanceJSON through cs and returns the grouped
// errors, or nil when the instance is valid.
func validationErrors(t *testing.T, cs *CompiledSchema, instanceJSON string) []ErrorGroup {
	t.Helper()
	err := cs.Validate([]byte(instanceJSON))
	if err == nil {
		return nil
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve.Groups
}

// keywordsAt returns the keyword names of the group at path, in order.
func keywordsAt(groups []ErrorGroup, path string) []string {
	for _, g := range groups {
		if g.Path == path {
			names := make([]string, len(g.Errors))
			for i, e := range g.Errors {
				names[i] = e.Keyword
			}
			return names
		}
	}
	return nil
}

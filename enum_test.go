package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumStructuralMatch(t *testing.T) {
	cs := mustCompile(t, `{"enum":[1,"two",{"three":3}]}`)
	assert.Nil(t, validationErrors(t, cs, `1`))
	assert.Nil(t, validationErrors(t, cs, `"two"`))
	assert.Nil(t, validationErrors(t, cs, `{"three":3}`))
	assert.NotNil(t, validationErrors(t, cs, `2`))
}

func TestEnumIntVsNumDistinct(t *testing.T) {
	cs := mustCompile(t, `{"enum":[1]}`)
	assert.Nil(t, validationErrors(t, cs, `1`))
	assert.NotNil(t, validationErrors(t, cs, `1.0`), "a 1.0 literal is Num, distinct from the enumerated Int 1")
}

func TestEnumSchemaErrors(t *testing.T) {
	v := NewValidator()
	for _, schemaJSON := range []string{
		`{"enum":[]}`,
		`{"enum":"not-an-array"}`,
		`{"enum":[1,1]}`,
	} {
		_, err := v.Compile([]byte(schemaJSON))
		assert.Error(t, err, "schema %s should fail to compile", schemaJSON)
	}
}

func TestTypeSchemaErrorOnEmptyOrDuplicateList(t *testing.T) {
	v := NewValidator()
	for _, schemaJSON := range []string{
		`{"type":[]}`,
		`{"type":["string","string"]}`,
	} {
		_, err := v.Compile([]byte(schemaJSON))
		require.Error(t, err, "schema %s should fail to compile", schemaJSON)
	}
}

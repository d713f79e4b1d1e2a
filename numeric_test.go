package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumMaximumInclusive(t *testing.T) {
	cs := mustCompile(t, `{"minimum":1,"maximum":10}`)
	assert.Nil(t, validationErrors(t, cs, `1`))
	assert.Nil(t, validationErrors(t, cs, `10`))

	groups := validationErrors(t, cs, `0`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"minimum"}, keywordsAt(groups, ""))

	groups = validationErrors(t, cs, `11`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"maximum"}, keywordsAt(groups, ""))
}

func TestExclusiveMinimumMaximum(t *testing.T) {
	cs := mustCompile(t, `{"minimum":1,"exclusiveMinimum":true,"maximum":10,"exclusiveMaximum":true}`)
	assert.NotNil(t, validationErrors(t, cs, `1`))
	assert.NotNil(t, validationErrors(t, cs, `10`))
	assert.Nil(t, validationErrors(t, cs, `5`))
}

func TestMultipleOfExactDivision(t *testing.T) {
	cs := mustCompile(t, `{"multipleOf":3}`)
	assert.Nil(t, validationErrors(t, cs, `9`))
	assert.Nil(t, validationErrors(t, cs, `9.0`), "a Num instance still divides exactly via big.Rat")

	groups := validationErrors(t, cs, `10`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"multipleOf"}, keywordsAt(groups, ""))
}

func TestMultipleOfRequiresPositiveInteger(t *testing.T) {
	v := NewValidator()
	for _, schemaJSON := range []string{
		`{"multipleOf":2.5}`,
		`{"multipleOf":0}`,
		`{"multipleOf":-2}`,
	} {
		_, err := v.Compile([]byte(schemaJSON))
		assert.Error(t, err, "schema %s should fail to compile", schemaJSON)
	}
}

func TestTypeIntegerVsNumber(t *testing.T) {
	intCS := mustCompile(t, `{"type":"integer"}`)
	assert.Nil(t, validationErrors(t, intCS, `5`))
	assert.NotNil(t, validationErrors(t, intCS, `5.5`))

	numCS := mustCompile(t, `{"type":"number"}`)
	assert.Nil(t, validationErrors(t, numCS, `5`))
	assert.Nil(t, validationErrors(t, numCS, `5.5`))
}

func TestTypeList(t *testing.T) {
	cs := mustCompile(t, `{"type":["string","null"]}`)
	assert.Nil(t, validationErrors(t, cs, `"s"`))
	assert.Nil(t, validationErrors(t, cs, `null`))
	assert.NotNil(t, validationErrors(t, cs, `5`))
}

func TestMaximumLessThanMinimumIsSchemaError(t *testing.T) {
	v := NewValidator()
	_, err := v.Compile([]byte(`{"minimum":10,"maximum":1}`))
	require.Error(t, err)
}

package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOfAccumulatesEveryBranchFailure(t *testing.T) {
	cs := mustCompile(t, `{"allOf":[{"minimum":5},{"multipleOf":2}]}`)
	groups := validationErrors(t, cs, `3`)
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []string{"minimum", "multipleOf"}, keywordsAt(groups, ""))
}

func TestAllOfPasses(t *testing.T) {
	cs := mustCompile(t, `{"allOf":[{"minimum":5},{"multipleOf":2}]}`)
	assert.Nil(t, validationErrors(t, cs, `6`))
}

func TestAnyOfSuccessDiscardsScratch(t *testing.T) {
	// B (the second branch) matches; A's failure must never surface.
	cs := mustCompile(t, `{"anyOf":[{"type":"integer","minimum":100},{"type":"integer"}]}`)
	assert.Nil(t, validationErrors(t, cs, `3`))
}

func TestAnyOfAllBranchesFail(t *testing.T) {
	cs := mustCompile(t, `{"anyOf":[{"type":"integer"},{"type":"boolean"}]}`)
	groups := validationErrors(t, cs, `"x"`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"anyOf"}, keywordsAt(groups, ""))
}

func TestOneOfExactlyOneMatch(t *testing.T) {
	cs := mustCompile(t, `{"oneOf":[{"type":"integer"},{"type":"string"}]}`)
	assert.Nil(t, validationErrors(t, cs, `3`))
	assert.Nil(t, validationErrors(t, cs, `"s"`))
}

func TestOneOfZeroMatches(t *testing.T) {
	cs := mustCompile(t, `{"oneOf":[{"type":"integer"},{"type":"string"}]}`)
	groups := validationErrors(t, cs, `true`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"oneOf"}, keywordsAt(groups, ""))
}

func TestNotPassesWhenSubSchemaFails(t *testing.T) {
	cs := mustCompile(t, `{"not":{"type":"string"}}`)
	assert.Nil(t, validationErrors(t, cs, `5`))
}

func TestNotFailsWhenSubSchemaPasses(t *testing.T) {
	cs := mustCompile(t, `{"not":{"type":"string"}}`)
	groups := validationErrors(t, cs, `"s"`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"not"}, keywordsAt(groups, ""))
}

func TestCompositionSchemaErrors(t *testing.T) {
	v := NewValidator()
	for _, schemaJSON := range []string{
		`{"allOf":[]}`,
		`{"anyOf":"nope"}`,
		`{"oneOf":[1,2]}`,
		`{"not":"nope"}`,
	} {
		_, err := v.Compile([]byte(schemaJSON))
		assert.Error(t, err, "schema %s should fail to compile", schemaJSON)
	}
}

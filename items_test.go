package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsObjectFormAppliesToEveryElement(t *testing.T) {
	cs := mustCompile(t, `{"items":{"type":"integer"}}`)
	assert.Nil(t, validationErrors(t, cs, `[1,2,3]`))
	groups := validationErrors(t, cs, `[1,"x",3,"y"]`)
	require.Len(t, groups, 2)
	assert.Equal(t, "/1", groups[0].Path)
	assert.Equal(t, "/3", groups[1].Path)
}

func TestItemsArrayFormIsTupleValidation(t *testing.T) {
	cs := mustCompile(t, `{"items":[{"type":"integer"},{"type":"string"}]}`)
	assert.Nil(t, validationErrors(t, cs, `[1,"a",true,null]`), "indices beyond the tuple are unconstrained without additionalItems")
	groups := validationErrors(t, cs, `["x",5]`)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"type"}, keywordsAt(groups, "/0"))
	assert.Equal(t, []string{"type"}, keywordsAt(groups, "/1"))
}

func TestAdditionalItemsFalseRejectsExcessTupleSlots(t *testing.T) {
	cs := mustCompile(t, `{"items":[{"type":"integer"}],"additionalItems":false}`)
	assert.Nil(t, validationErrors(t, cs, `[1]`))
	groups := validationErrors(t, cs, `[1,"extra",true]`)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"additionalItems"}, keywordsAt(groups, "/1"))
	assert.Equal(t, []string{"additionalItems"}, keywordsAt(groups, "/2"))
}

func TestAdditionalItemsSchemaValidatesExcessTupleSlots(t *testing.T) {
	cs := mustCompile(t, `{"items":[{"type":"integer"}],"additionalItems":{"type":"string"}}`)
	assert.Nil(t, validationErrors(t, cs, `[1,"a","b"]`))
	groups := validationErrors(t, cs, `[1,5]`)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"type"}, keywordsAt(groups, "/1"))
}

func TestAdditionalItemsInertWithUniformItems(t *testing.T) {
	cs := mustCompile(t, `{"items":{"type":"integer"},"additionalItems":false}`)
	assert.Nil(t, validationErrors(t, cs, `[1,2,3]`))
}

func TestMinMaxItems(t *testing.T) {
	cs := mustCompile(t, `{"minItems":1,"maxItems":2}`)
	assert.Nil(t, validationErrors(t, cs, `[1]`))
	assert.Nil(t, validationErrors(t, cs, `[1,2]`))
	assert.NotNil(t, validationErrors(t, cs, `[]`))
	assert.NotNil(t, validationErrors(t, cs, `[1,2,3]`))
}

func TestMaxItemsLessThanMinItemsIsSchemaError(t *testing.T) {
	v := NewValidator()
	_, err := v.Compile([]byte(`{"minItems":3,"maxItems":1}`))
	require.Error(t, err)
}

func TestUniqueItemsStructuralEquality(t *testing.T) {
	cs := mustCompile(t, `{"uniqueItems":true}`)
	assert.Nil(t, validationErrors(t, cs, `[{"a":1},{"a":2}]`))
	assert.NotNil(t, validationErrors(t, cs, `[{"a":1,"b":2},{"b":2,"a":1}]`), "object key order must not make two objects distinct")
}

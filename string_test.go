package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMaxLength(t *testing.T) {
	cs := mustCompile(t, `{"minLength":2,"maxLength":4}`)
	assert.Nil(t, validationErrors(t, cs, `"ab"`))
	assert.Nil(t, validationErrors(t, cs, `"abcd"`))
	assert.NotNil(t, validationErrors(t, cs, `"a"`))
	assert.NotNil(t, validationErrors(t, cs, `"abcde"`))
}

func TestLengthCountsCodePointsNotBytes(t *testing.T) {
	cs := mustCompile(t, `{"minLength":3,"maxLength":3}`)
	// "héllo"[:3] isn't meaningful in Go string slicing, so use a string
	// whose code-point count differs from its byte count: 3 multi-byte runes.
	assert.Nil(t, validationErrors(t, cs, `"日本語"`), "3 code points should satisfy minLength/maxLength 3 despite being 9 bytes")
}

func TestMaxLengthLessThanMinLengthIsSchemaError(t *testing.T) {
	v := NewValidator()
	_, err := v.Compile([]byte(`{"minLength":5,"maxLength":1}`))
	require.Error(t, err)
}

func TestPatternUnanchoredFind(t *testing.T) {
	cs := mustCompile(t, `{"pattern":"foo"}`)
	assert.Nil(t, validationErrors(t, cs, `"xxfooxx"`))
	assert.NotNil(t, validationErrors(t, cs, `"bar"`))
}

func TestPatternInvalidRegexIsSchemaError(t *testing.T) {
	v := NewValidator()
	_, err := v.Compile([]byte(`{"pattern":"("}`))
	require.Error(t, err)
}

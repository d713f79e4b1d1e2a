package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	assert.Equal(t, "", RootPath().String())

	p := RootPath().WithKey("a").WithIndex(2).WithKey("b")
	assert.Equal(t, "/a/2/b", p.String())
}

func TestPathBranchingDoesNotAlias(t *testing.T) {
	base := RootPath().WithKey("a")
	left := base.WithKey("left")
	right := base.WithKey("right")

	assert.Equal(t, "/a/left", left.String())
	assert.Equal(t, "/a/right", right.String())
	assert.Equal(t, "/a", base.String())
}

func TestSchemaPathStringDotJoined(t *testing.T) {
	p := RootSchemaPath().With("properties").With("name").With("type")
	assert.Equal(t, "properties.name.type", p.String())
}

func TestSchemaPathRootIsEmpty(t *testing.T) {
	assert.Equal(t, "", RootSchemaPath().String())
}

package jsonschema

import "strconv"

// Path is an immutable instance-side location, rendered as a JSON Pointer
// style list of tokens. Appending never mutates the receiver's backing
// array, so a single Path can be shared and branched across sibling rules
// (allOf/anyOf/properties) without them clobbering each other's locations.
type Path struct {
	tokens []string
}

// RootPath is the empty instance path.
func RootPath() Path { return Path{} }

// WithKey returns a new Path with an object member key appended.
func (p Path) WithKey(key string) Path {
	return p.with(key)
}

// WithIndex returns a new Path with an array index appended.
func (p Path) WithIndex(i int) Path {
	return p.with(strconv.Itoa(i))
}

func (p Path) with(tok string) Path {
	next := make([]string, len(p.tokens)+1)
	copy(next, p.tokens)
	next[len(p.tokens)] = tok
	return Path{tokens: next}
}

// Tokens returns the path's tokens. The caller must not mutate the
// returned slice.
func (p Path) Tokens() []string { return p.tokens }

// String renders the path as a '/'-joined JSON Pointer, "" at the root.
func (p Path) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	s := ""
	for _, t := range p.tokens {
		s += "/" + t
	}
	return s
}

// SchemaPath is the compile-time analogue of Path: the location within the
// schema document a keyword was declared at, used only for diagnostics
// (dead-rule pruning warnings, SchemaError messages) and never compared
// against instance Paths.
type SchemaPath struct {
	tokens []string
}

// RootSchemaPath is the empty schema path.
func RootSchemaPath() SchemaPath { return SchemaPath{} }

// With returns a new SchemaPath with a token appended.
func (p SchemaPath) With(tok string) SchemaPath {
	next := make([]string, len(p.tokens)+1)
	copy(next, p.tokens)
	next[len(p.tokens)] = tok
	return SchemaPath{tokens: next}
}

// Tokens returns the schema path's tokens. The caller must not mutate it.
func (p SchemaPath) Tokens() []string { return p.tokens }

// String renders the schema path the way the source's errors.py does:
// its tokens dot-joined, e.g. "properties.name.type".
func (p SchemaPath) String() string {
	s := ""
	for i, t := range p.tokens {
		if i > 0 {
			s += "."
		}
		s += t
	}
	return s
}

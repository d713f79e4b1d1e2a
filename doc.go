// Package jsonschema compiles JSON Schema Draft-04 schemas into a
// Program intermediate representation and executes that representation
// against JSON instances, without re-walking the schema document on
// every validation call.
package jsonschema

package jsonschema

import "fmt"

// === compile-time failures ===
//
// These are the fixed set of reasons compiling a schema can fail outright,
// grouped the way the teacher groups its own sentinel catalogue by concern.
var (
	ErrSchemaNotObjectOrBool = fmt.Errorf("jsonschema: schema must be a JSON object or boolean")
	ErrUnknownDialect        = fmt.Errorf("jsonschema: unrecognized $schema dialect")
	ErrMaxDepthExceeded      = fmt.Errorf("jsonschema: schema nesting exceeds the configured max depth")
	ErrInvalidRegex          = fmt.Errorf("jsonschema: invalid regular expression")
	ErrInvalidKeywordValue   = fmt.Errorf("jsonschema: invalid value for keyword")
)

// SchemaError reports a failure to compile a schema. Its Error rendering
// dot-joins the schema path before the message, exactly as the source's
// errors.py renders a compile failure: "'.'.join(path) - msg".
type SchemaError struct {
	Path SchemaPath
	Err  error
}

func (e *SchemaError) Error() string {
	if p := e.Path.String(); p != "" {
		return fmt.Sprintf("%s - %s", p, e.Err)
	}
	return e.Err.Error()
}

func (e *SchemaError) Unwrap() error { return e.Err }

func newSchemaError(path SchemaPath, err error) *SchemaError {
	return &SchemaError{Path: path, Err: err}
}

// ValidationError is the aggregate outcome of a failed Validate call: one
// ErrorGroup per distinct instance location that produced at least one
// keyword failure, in first-seen order.
type ValidationError struct {
	Groups []ErrorGroup
}

func (e *ValidationError) Error() string {
	if len(e.Groups) == 0 {
		return "jsonschema: validation failed"
	}
	first := e.Groups[0]
	if len(first.Errors) == 0 {
		return "jsonschema: validation failed"
	}
	loc := first.Path
	if loc == "" {
		loc = "(root)"
	}
	if len(e.Groups) == 1 && len(first.Errors) == 1 {
		return fmt.Sprintf("jsonschema: %s: %s", loc, first.Errors[0].Message)
	}
	return fmt.Sprintf("jsonschema: %s: %s (and more)", loc, first.Errors[0].Message)
}

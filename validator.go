package jsonschema

import (
	"fmt"
	"log/slog"
)

// draft04SchemaURIs are the $schema values that route to the Draft-04
// dialect, mirroring the Python original's Validator.schemas dict in
// validator.py.
var draft04SchemaURIs = []string{
	"http://json-schema.org/schema#",
	"http://json-schema.org/draft-04/schema#",
}

// Validator is the top-level façade: it owns one Compiler per known
// dialect and dispatches a schema document to the right one by its
// `$schema` member, defaulting to Draft-04 when absent.
type Validator struct {
	dialects map[string]*Compiler
	logger   *slog.Logger
	locale   string
	maxDepth int
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidatorLogger sets the diagnostic sink used by every dialect's Compiler.
func WithValidatorLogger(l *slog.Logger) ValidatorOption { return func(v *Validator) { v.logger = l } }

// WithLocale records a locale on the Validator (default "en"). The value
// is not consulted when localizing: (*ValidationError).Localize takes its
// locale as an argument.
func WithLocale(locale string) ValidatorOption { return func(v *Validator) { v.locale = locale } }

// WithValidatorMaxDepth sets the compile-time schema nesting bound shared
// by every dialect's Compiler. Defaults to 64.
func WithValidatorMaxDepth(n int) ValidatorOption { return func(v *Validator) { v.maxDepth = n } }

// NewValidator returns a Validator with the Draft-04 dialect registered
// under both recognized $schema URIs.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		logger:   slog.Default(),
		locale:   "en",
		maxDepth: 64,
	}
	for _, opt := range opts {
		opt(v)
	}
	compiler := NewCompiler(WithLogger(v.logger), WithMaxDepth(v.maxDepth))
	v.dialects = make(map[string]*Compiler, len(draft04SchemaURIs))
	for _, uri := range draft04SchemaURIs {
		v.dialects[uri] = compiler
	}
	return v
}

// CompiledSchema is a schema compiled against a particular Validator: the
// executable Program produced by the compiler its dialect routed it to.
type CompiledSchema struct {
	program CompiledProgram
}

// Compile parses and compiles a schema document, selecting a dialect by
// its `$schema` member when present (defaulting to Draft-04 otherwise).
func (v *Validator) Compile(schemaDoc []byte) (*CompiledSchema, error) {
	value, err := Parse(schemaDoc)
	if err != nil {
		return nil, newSchemaError(RootSchemaPath(), err)
	}
	return v.CompileValue(value)
}

// CompileValue compiles an already-parsed schema Value.
func (v *Validator) CompileValue(value Value) (*CompiledSchema, error) {
	compiler, err := v.selectCompiler(value)
	if err != nil {
		return nil, err
	}
	program, err := compiler.Compile(value)
	if err != nil {
		return nil, err
	}
	return &CompiledSchema{program: program}, nil
}

func (v *Validator) selectCompiler(value Value) (*Compiler, error) {
	if value.Tag() == TagObj {
		if schemaMember, ok := value.Obj().Get("$schema"); ok && schemaMember.Tag() == TagStr {
			compiler, ok := v.dialects[schemaMember.Str()]
			if !ok {
				return nil, newSchemaError(RootSchemaPath(), fmt.Errorf("%w: %s", ErrUnknownDialect, schemaMember.Str()))
			}
			return compiler, nil
		}
	}
	return v.dialects[draft04SchemaURIs[0]], nil
}

// Validate runs the compiled Program against an instance document and
// returns a *ValidationError when any rule failed, nil otherwise.
func (s *CompiledSchema) Validate(instanceDoc []byte) error {
	value, err := Parse(instanceDoc)
	if err != nil {
		return err
	}
	return s.ValidateValue(value)
}

// ValidateValue runs the compiled Program against an already-parsed
// instance Value.
func (s *CompiledSchema) ValidateValue(value Value) error {
	if s.program.IsNoop() {
		return nil
	}
	var acc ErrorAccumulator
	s.program.Run(RootPath(), value, &acc)
	if acc.Len() == 0 {
		return nil
	}
	return &ValidationError{Groups: GroupErrors(acc.Records())}
}

// Localize renders a ValidationError's messages through a locale bundle
// built by GetI18n, layered on top of the mandatory structural fields.
func (e *ValidationError) Localize(locale string) (map[string][]string, error) {
	localizer, err := GetI18n(locale)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(e.Groups))
	for _, g := range e.Groups {
		msgs := make([]string, 0, len(g.Errors))
		for _, ke := range g.Errors {
			msgs = append(msgs, ke.Localize(localizer))
		}
		out[g.Path] = msgs
	}
	return out, nil
}

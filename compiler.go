package jsonschema

import (
	"fmt"
	"log/slog"
)

// Dialect is a fixed, ordered keyword table: the set of schema keywords a
// compiler recognizes, and the order their compiled rules run in at
// runtime. The order is declared here, not derived from any particular
// schema document's member order, because §3.4 requires type-specific
// rule-list iteration to follow the dialect's own order.
type Dialect struct {
	Name     string
	Keywords []KeywordDef
}

// draft04Keywords is the Draft-04 keyword table. The grouping and order
// (general, composition, array, number, object, string) mirrors the
// Python original's draft_04/schema.py Schema.__init__ keyword dict.
var draft04Keywords = []KeywordDef{
	{Name: "enum", Applies: AppliesAny, IsGeneral: true, Construct: constructEnum},
	{Name: "type", Applies: AppliesAny, IsGeneral: true, Construct: constructType},

	{Name: "allOf", Applies: AppliesAny, Construct: constructAllOf},
	{Name: "anyOf", Applies: AppliesAny, Construct: constructAnyOf},
	{Name: "oneOf", Applies: AppliesAny, Construct: constructOneOf},
	{Name: "not", Applies: AppliesAny, Construct: constructNot},

	{Name: "items", Applies: AppliesArr, Construct: constructItems},
	{Name: "additionalItems", Applies: AppliesArr, Construct: constructAdditionalItems},
	{Name: "minItems", Applies: AppliesArr, Construct: constructMinItems},
	{Name: "maxItems", Applies: AppliesArr, Construct: constructMaxItems},
	{Name: "uniqueItems", Applies: AppliesArr, Construct: constructUniqueItems},

	{Name: "minimum", Applies: AppliesNumeric, Construct: constructMinimum},
	{Name: "maximum", Applies: AppliesNumeric, Construct: constructMaximum},
	{Name: "multipleOf", Applies: AppliesNumeric, Construct: constructMultipleOf},
	{Name: "exclusiveMinimum", Applies: AppliesNumeric, Construct: constructExclusiveMinimum},
	{Name: "exclusiveMaximum", Applies: AppliesNumeric, Construct: constructExclusiveMaximum},

	{Name: "properties", Applies: AppliesObj, Construct: constructProperties},
	{Name: "patternProperties", Applies: AppliesObj, Construct: constructPatternProperties},
	{Name: "additionalProperties", Applies: AppliesObj, Construct: constructAdditionalProperties},
	{Name: "required", Applies: AppliesObj, Construct: constructRequired},
	{Name: "minProperties", Applies: AppliesObj, Construct: constructMinProperties},
	{Name: "maxProperties", Applies: AppliesObj, Construct: constructMaxProperties},

	{Name: "minLength", Applies: AppliesStr, Construct: constructMinLength},
	{Name: "maxLength", Applies: AppliesStr, Construct: constructMaxLength},
	{Name: "format", Applies: AppliesStr, Construct: constructFormat},
	{Name: "pattern", Applies: AppliesStr, Construct: constructPattern},
}

func draft04Dialect() *Dialect {
	return &Dialect{Name: "draft-04", Keywords: draft04Keywords}
}

// Compiler turns a schema document into a CompiledProgram for a single
// dialect (Draft-04). It is configured through functional options
// mirroring the teacher's own Compiler options style.
type Compiler struct {
	dialect  *Dialect
	logger   *slog.Logger
	maxDepth int
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithLogger sets the diagnostic sink dead-rule pruning warnings are sent
// to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) CompilerOption {
	return func(c *Compiler) { c.logger = l }
}

// WithMaxDepth sets the compile-time schema nesting bound. Defaults to 64.
func WithMaxDepth(n int) CompilerOption {
	return func(c *Compiler) { c.maxDepth = n }
}

// NewCompiler returns a Draft-04 Compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		dialect:  draft04Dialect(),
		logger:   slog.Default(),
		maxDepth: 64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// compileCtx threads compile-time state (the owning Compiler and current
// nesting depth) through recursive sub-schema compilation without
// exposing either on the public KeywordConstructor signature beyond what
// a constructor needs.
type compileCtx struct {
	c     *Compiler
	depth int
}

// CompileSub compiles a nested schema value (the body of allOf/anyOf/
// items/properties/...), enforcing the configured depth bound. Every
// keyword constructor that recurses into a sub-schema must go through
// this, never call Compiler.Compile directly, so the depth counter
// actually reflects nesting rather than resetting per top-level call.
func (ctx *compileCtx) CompileSub(value Value, path SchemaPath) (CompiledProgram, error) {
	if ctx.depth+1 > ctx.c.maxDepth {
		return nil, newSchemaError(path, ErrMaxDepthExceeded)
	}
	child := &compileCtx{c: ctx.c, depth: ctx.depth + 1}
	return ctx.c.compileAt(child, value, path)
}

// Compile compiles a top-level schema document into a CompiledProgram.
func (c *Compiler) Compile(value Value) (CompiledProgram, error) {
	ctx := &compileCtx{c: c, depth: 0}
	return c.compileAt(ctx, value, RootSchemaPath())
}

func (c *Compiler) compileAt(ctx *compileCtx, value Value, path SchemaPath) (CompiledProgram, error) {
	switch value.Tag() {
	case TagBool:
		if value.Bool() {
			return theEmptyProgram, nil
		}
		return singleRuleProgram{rule: alwaysFailRule()}, nil
	case TagObj:
		return c.compileObject(ctx, value.Obj(), path)
	default:
		return nil, newSchemaError(path, ErrSchemaNotObjectOrBool)
	}
}

func alwaysFailRule() Rule {
	return func(path Path, value Value, acc *ErrorAccumulator) {
		acc.Add(ErrorRecord{
			Path:    path,
			Keyword: "false",
			Value:   value,
			Code:    "false_schema",
			Message: "schema is `false` and never validates",
		})
	}
}

func (c *Compiler) compileObject(ctx *compileCtx, obj *Object, path SchemaPath) (CompiledProgram, error) {
	declared := declaredTypeMask(obj)

	var general []Rule
	var byTag [7][]Rule

	for _, kw := range c.dialect.Keywords {
		member, ok := obj.Get(kw.Name)
		if !ok {
			continue
		}
		kwPath := path.With(kw.Name)

		if !kw.IsGeneral && declared != AppliesAny && kw.Applies.Disjoint(declared) {
			c.logger.Warn("keyword will never be used",
				"schema_path", kwPath.String(),
				"keyword", kw.Name,
			)
			continue
		}

		rule, err := kw.Construct(ctx, member, obj, kwPath)
		if err != nil {
			if se, ok := err.(*SchemaError); ok {
				return nil, se
			}
			return nil, newSchemaError(kwPath, err)
		}
		if rule == nil {
			continue
		}

		if kw.IsGeneral {
			general = append(general, rule)
			continue
		}
		for t := Tag(0); t < 7; t++ {
			if kw.Applies.Has(t) {
				byTag[t] = append(byTag[t], rule)
			}
		}
	}

	return optimize(general, byTag), nil
}

// declaredTypeMask computes, for dead-rule pruning purposes only, the
// set of instance tags a schema's own `type` keyword allows. A bare
// `"integer"` or `"number"` declaration is widened to AppliesNumeric so
// numeric keywords (minimum, multipleOf, ...) are never pruned out from
// under either tag. Absence of `type` means no pruning applies.
func declaredTypeMask(obj *Object) Applicability {
	member, ok := obj.Get("type")
	if !ok {
		return AppliesAny
	}
	switch member.Tag() {
	case TagStr:
		return typeNameMask(member.Str())
	case TagArr:
		var mask Applicability
		for _, item := range member.Arr() {
			if item.Tag() == TagStr {
				mask |= typeNameMask(item.Str())
			}
		}
		if mask == 0 {
			return AppliesAny
		}
		return mask
	default:
		return AppliesAny
	}
}

// typeNameMask is typeMatchMask widened for pruning purposes: "integer" and
// "number" both resolve to AppliesNumeric here (rather than typeMatchMask's
// AppliesInt/AppliesNumeric split) so that a numeric keyword is never
// pruned out from under whichever of the two the schema declared. It
// defers to typeMatchMask for every other name so the two never drift on
// everything but that one widening.
func typeNameMask(name string) Applicability {
	if name == "integer" || name == "number" {
		return AppliesNumeric
	}
	return typeMatchMask(name)
}

func invalidKeywordValue(path SchemaPath, keyword string) *SchemaError {
	return newSchemaError(path, fmt.Errorf("%w: %s", ErrInvalidKeywordValue, keyword))
}

package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func noopRule() Rule {
	return func(Path, Value, *ErrorAccumulator) {}
}

func failingRule(keyword string) Rule {
	return func(path Path, value Value, acc *ErrorAccumulator) {
		acc.Add(ErrorRecord{Path: path, Keyword: keyword})
	}
}

func TestOptimizeEmptyYieldsEmptyProgram(t *testing.T) {
	var byTag [7][]Rule
	p := optimize(nil, byTag)
	_, ok := p.(emptyProgram)
	assert.True(t, ok)
	assert.True(t, p.IsNoop())
}

func TestOptimizeSingleGeneralRuleCollapses(t *testing.T) {
	var byTag [7][]Rule
	p := optimize([]Rule{failingRule("x")}, byTag)
	_, ok := p.(singleRuleProgram)
	assert.True(t, ok, "a single general rule should collapse to singleRuleProgram")
}

func TestOptimizeSingleTypedRuleCollapses(t *testing.T) {
	var byTag [7][]Rule
	byTag[TagStr] = []Rule{failingRule("x")}
	p := optimize(nil, byTag)
	_, ok := p.(singleRuleProgram)
	assert.True(t, ok, "a single type-specific rule should collapse to singleRuleProgram")
}

func TestOptimizeGeneralOnlyShape(t *testing.T) {
	var byTag [7][]Rule
	p := optimize([]Rule{failingRule("a"), failingRule("b")}, byTag)
	_, ok := p.(generalOnlyProgram)
	assert.True(t, ok)
}

func TestOptimizeTypeOnlyShape(t *testing.T) {
	var byTag [7][]Rule
	byTag[TagStr] = []Rule{failingRule("a"), failingRule("b")}
	p := optimize(nil, byTag)
	_, ok := p.(typeOnlyProgram)
	assert.True(t, ok)
}

func TestOptimizeFullShape(t *testing.T) {
	var byTag [7][]Rule
	byTag[TagStr] = []Rule{failingRule("a")}
	p := optimize([]Rule{failingRule("b")}, byTag)
	_, ok := p.(fullProgram)
	assert.True(t, ok)
}

// TestOptimizerEquivalence checks §8's optimizer-equivalence property: the
// chosen IR shape must never change which rules fire or their order,
// regardless of which CompiledProgram variant optimize() picks.
func TestOptimizerEquivalence(t *testing.T) {
	var generalOnly [7][]Rule
	pGeneral := optimize([]Rule{failingRule("g1"), failingRule("g2")}, generalOnly)

	var typed [7][]Rule
	typed[TagInt] = []Rule{failingRule("t1")}
	pFull := optimize([]Rule{failingRule("g1"), failingRule("g2")}, typed)

	for _, tc := range []struct {
		name  string
		value Value
	}{
		{"int matches typed rule", Int(5)},
		{"str does not match typed rule", Str("x")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var accGeneral, accFull ErrorAccumulator
			pGeneral.Run(RootPath(), tc.value, &accGeneral)
			pFull.Run(RootPath(), tc.value, &accFull)

			gotGeneral := recordKeywords(accGeneral.Records())
			gotFull := recordKeywords(accFull.Records())
			assert.Equal(t, []string{"g1", "g2"}, gotGeneral)

			if tc.value.Tag() == TagInt {
				assert.Equal(t, []string{"g1", "g2", "t1"}, gotFull)
			} else {
				assert.Equal(t, []string{"g1", "g2"}, gotFull)
			}
		})
	}
}

func recordKeywords(records []ErrorRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Keyword
	}
	return out
}

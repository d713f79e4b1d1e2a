package jsonschema

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Tag is the variant discriminator of a JSON value.
type Tag uint8

const (
	TagNull Tag = iota
	TagBool
	TagInt
	TagNum
	TagStr
	TagArr
	TagObj
)

// String renders the tag using the keyword-table type names ("integer",
// "number", ...), not the Go identifier.
func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagBool:
		return "boolean"
	case TagInt:
		return "integer"
	case TagNum:
		return "number"
	case TagStr:
		return "string"
	case TagArr:
		return "array"
	case TagObj:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the tagged-sum JSON value: Null | Bool | Int | Num | Str | Arr | Obj.
//
// Int and Num are distinct variants even when numerically equal: the literal
// `5` decodes to Int, `5.0` decodes to Num, matching the source's
// int/float split on the literal form.
type Value struct {
	tag Tag
	b   bool
	i   int64
	n   float64
	s   string
	arr []Value
	obj *Object
}

// Object is an insertion-ordered string-to-Value mapping.
type Object struct {
	keys []string
	idx  map[string]int
	vals []Value
}

// NewObject returns an empty, ready-to-populate Object.
func NewObject() *Object {
	return &Object{idx: make(map[string]int)}
}

// Set inserts or overwrites a key, preserving the original insertion
// position on overwrite.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.idx[key]; ok {
		o.vals[i] = v
		return
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Get looks up a key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.idx[key]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

// Keys returns the object's keys in insertion order. The caller must not
// mutate the returned slice.
func (o *Object) Keys() []string { return o.keys }

// Len reports the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Null constructs a Null value.
func Null() Value { return Value{tag: TagNull} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{tag: TagBool, b: b} }

// Int constructs an Int value.
func Int(i int64) Value { return Value{tag: TagInt, i: i} }

// Num constructs a Num value.
func Num(f float64) Value { return Value{tag: TagNum, n: f} }

// Str constructs a Str value.
func Str(s string) Value { return Value{tag: TagStr, s: s} }

// Arr constructs an Arr value. items is retained, not copied.
func Arr(items []Value) Value { return Value{tag: TagArr, arr: items} }

// Obj constructs an Obj value. obj is retained, not copied.
func Obj(obj *Object) Value { return Value{tag: TagObj, obj: obj} }

// Tag reports the value's variant.
func (v Value) Tag() Tag { return v.tag }

// Bool reports the boolean payload; only meaningful when Tag() == TagBool.
func (v Value) Bool() bool { return v.b }

// Int reports the integer payload; only meaningful when Tag() == TagInt.
func (v Value) Int() int64 { return v.i }

// Num reports the float payload; only meaningful when Tag() == TagNum.
func (v Value) Num() float64 { return v.n }

// Str reports the string payload; only meaningful when Tag() == TagStr.
func (v Value) Str() string { return v.s }

// Arr reports the array payload; only meaningful when Tag() == TagArr.
func (v Value) Arr() []Value { return v.arr }

// Obj reports the object payload; only meaningful when Tag() == TagObj.
func (v Value) Obj() *Object { return v.obj }

// IsNumeric reports whether the value is Int or Num, the two tags that
// applicability {integer, number} keywords fire on.
func (v Value) IsNumeric() bool { return v.tag == TagInt || v.tag == TagNum }

// AsFloat64 widens Int or Num to a float64 for arithmetic comparisons.
// Callers must check IsNumeric first.
func (v Value) AsFloat64() float64 {
	if v.tag == TagInt {
		return float64(v.i)
	}
	return v.n
}

// Equal is the recursive structural equality of §3.1: object key order is
// irrelevant, array order is significant, and Int/Num are distinct variants.
func (v Value) Equal(other Value) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case TagNull:
		return true
	case TagBool:
		return v.b == other.b
	case TagInt:
		return v.i == other.i
	case TagNum:
		return v.n == other.n
	case TagStr:
		return v.s == other.s
	case TagArr:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case TagObj:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		for _, k := range v.obj.keys {
			ov, ok := other.obj.Get(k)
			if !ok {
				return false
			}
			mv, _ := v.obj.Get(k)
			if !mv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// DuplicateIndices returns, in ascending order, every index j for which
// some earlier index i<j holds a structurally equal value — the rule
// semantics `uniqueItems` needs (spec §4.2, ported from the source's
// non_unique_items via an O(n^2) pairwise scan).
func DuplicateIndices(items []Value) []int {
	seen := make(map[int]bool)
	for j := 1; j < len(items); j++ {
		if seen[j] {
			continue
		}
		for i := 0; i < j; i++ {
			if items[i].Equal(items[j]) {
				seen[j] = true
				break
			}
		}
	}
	out := make([]int, 0, len(seen))
	for j := range seen {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}

// Parse decodes a JSON document into a Value tree, preserving object key
// insertion order by walking goccy/go-json's token stream directly
// (the same technique encoding/json.Decoder.Token callers use to recover
// ordering that decoding into map[string]any would discard).
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return parseNumber(t), nil
	case string:
		return Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Arr(items), nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("jsonschema: non-string object key %v", keyTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Obj(obj), nil
		}
	}
	return Value{}, fmt.Errorf("jsonschema: unexpected token %v", tok)
}

// parseNumber distinguishes Int from Num by the literal's lexical form,
// mirroring the source's int()/float() split on a parsed JSON literal.
func parseNumber(lit json.Number) Value {
	s := string(lit)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
	}
	f, _ := lit.Float64()
	return Num(f)
}

// Package parsetree lifts a raw CloudFormation document (JSON or YAML)
// into a typed resource/condition/mapping/parameter/output tree, resolving
// intrinsic functions and short-form tags along the way. It is the first
// stage of the pipeline described in spec.md §1: `parse(document) ->
// ParseTree`.
package parsetree

import "github.com/lex00/cdk-from-cfn-go/internal/primitives"

// ValueKind discriminates the ResourceValue tagged union (spec.md §3).
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindDouble
	KindString
	KindArray
	KindObject
	KindIntrinsic
)

// ObjectField is one key/value pair of an Object value. Objects are kept
// as an ordered slice, never a Go map, because spec.md §6's determinism
// guarantee requires "maps are iterated in insertion order" all the way
// through to emitted source.
type ObjectField struct {
	Key   string
	Value Value
}

// Value is the ResourceValue sum type from spec.md §3: Null | Bool |
// Number | Double | String | Array | Object | IntrinsicFunction. Only the
// field matching Kind is meaningful.
type Value struct {
	Kind      ValueKind
	Bool      bool
	Number    primitives.Int64
	Double    primitives.Float64
	String    string
	Array     []Value
	Object    []ObjectField
	Intrinsic *Intrinsic
}

func Null() Value              { return Value{Kind: KindNull} }
func Bool(b bool) Value        { return Value{Kind: KindBool, Bool: b} }
func Number(n primitives.Int64) Value  { return Value{Kind: KindNumber, Number: n} }
func Double(d primitives.Float64) Value { return Value{Kind: KindDouble, Double: d} }
func String(s string) Value    { return Value{Kind: KindString, String: s} }
func Array(items []Value) Value { return Value{Kind: KindArray, Array: items} }
func Object(fields []ObjectField) Value { return Value{Kind: KindObject, Object: fields} }
func FromIntrinsic(i *Intrinsic) Value { return Value{Kind: KindIntrinsic, Intrinsic: i} }

// Get returns the value of the named field in an Object, and whether it
// was present.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for _, f := range v.Object {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.Kind == KindNull }

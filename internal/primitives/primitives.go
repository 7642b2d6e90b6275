// Package primitives provides small wrapped numeric types used throughout
// the transpiler. CloudFormation templates mix integer and floating-point
// literals freely (YAML and JSON both collapse them to "number"), but the
// IR needs to tell them apart: an integer literal must round-trip without
// growing a ".0", and two numbers must compare equal regardless of which
// literal form produced them.
package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

// Int64 is a CloudFormation integer literal.
type Int64 int64

// Float64 is a CloudFormation floating-point literal.
type Float64 float64

// Equal reports whether two numeric primitives represent the same value,
// regardless of whether they were parsed as Int64 or Float64.
func Equal(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return false
	}
	return af == bf
}

// Compare returns -1, 0, or 1 according to whether a is less than, equal
// to, or greater than b. Both arguments must be Int64, Float64, or a plain
// Go int/float64 (the parser's untyped number type).
func Compare(a, b any) int {
	af, _ := asFloat(a)
	bf, _ := asFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case Int64:
		return float64(n), true
	case Float64:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return float64(n), true
	default:
		return 0, false
	}
}

// String renders a numeric primitive the way it should appear in generated
// source: integers never carry a decimal point, floats always do.
func (n Int64) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Float64) String() string {
	s := strconv.FormatFloat(float64(n), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

// ParseNumber converts a decoded YAML/JSON scalar into either an Int64 or a
// Float64, matching CloudFormation's loose numeric typing: a literal
// written without a fractional part or exponent parses as Int64.
func ParseNumber(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return Int64(v), nil
	case int64:
		return Int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return Int64(int64(v)), nil
		}
		return Float64(v), nil
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return Int64(i), nil
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return Float64(f), nil
		}
		return nil, fmt.Errorf("not a number: %q", v)
	default:
		return nil, fmt.Errorf("not a number: %#v", raw)
	}
}

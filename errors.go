package cfnfromcdk

import (
	"fmt"

	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/parsetree"
)

// ParseError is returned by Parse on malformed input or an unknown
// intrinsic (spec.md §7).
type ParseError = parsetree.ParseError

// LowerError is returned by Lower on an unresolved reference, a bad
// GetAtt target, a cyclic resource graph, a missing required property, or
// a malformed intrinsic argument (spec.md §7). Property values are not
// type-checked against the Schema.
type LowerError = ir.LowerError

// Warning is a non-fatal diagnostic surfaced alongside a successful Lower
// — an unknown resource type, or an unknown named property type. GetAtt
// attribute names are not checked against the resource type, so they
// produce no warning. Warnings never fail the pipeline; they ride the IR's
// side channel (spec.md §7, ir.IR.Warnings) and are collected here only
// so pipeline.go callers have one name for them.
type Warning = ir.SchemaWarning

// SchemaError reports an unknown CFN resource or property type
// encountered while lowering or synthesizing, mirroring the teacher's
// wetwire.SchemaError{Resource, Property, Message} shape
// (internal/schema/schema.go call sites in the teacher repo). Unlike
// ParseError/LowerError, a SchemaError alone never aborts a
// transpilation — per spec.md §7 "emitters degrade; lowering warns" — it
// is surfaced here only for a caller that wants to treat unknown types as
// fatal (e.g. a --strict CLI flag).
type SchemaError struct {
	Resource string
	Property string
	Message  string
}

func (e *SchemaError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("unknown resource %s: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("unknown property %s on %s: %s", e.Property, e.Resource, e.Message)
}

// EmitError wraps a writer I/O failure during Synthesize — the only
// failure mode spec.md §7 assigns to the emit stage, since emitters never
// fail on the IR itself.
type EmitError struct {
	Target string
	Err    error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit %s: %s", e.Target, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

package schema

import "fmt"

// Schema is the read-only service described in spec.md §4.3. It is safe
// for concurrent use (spec.md §5) because it never mutates after
// construction.
type Schema struct {
	types map[string]TypeSpec
}

// Builtin returns the bundled schema compiled into this binary. This
// mirrors the teacher's own "schema not available, degrade to a warning"
// posture (internal/schema/schema.go's resourceSchemas map) but carries
// per-target type names instead of validation-only required/allowed-value
// rules, since this schema now drives code generation rather than
// acceptance checks.
func Builtin() *Schema {
	return &Schema{types: builtinTypes}
}

// New constructs a Schema from an explicit type table. Tests use this to
// swap in a trimmed schema without touching the bundled data.
func New(types map[string]TypeSpec) *Schema {
	return &Schema{types: types}
}

// TypeNamed looks up a CloudFormation resource or property type name
// (e.g. "AWS::S3::Bucket" or "AWS::S3::Bucket.CorsRule"). The second
// return value is false when the schema has no entry for it — callers
// (principally the IR lowering pass and the emitters) must degrade
// gracefully rather than fail: lowering records a warning, and the
// emitters render an unknown resource type under a placeholder name
// derived from the CFN type name. No TODO comment is emitted for it.
func (s *Schema) TypeNamed(name string) (TypeSpec, bool) {
	t, ok := s.types[name]
	return t, ok
}

// MustTypeNamed is a convenience for callers that already checked
// existence (e.g. after a successful find_references walk) and want a
// panic rather than a silently-zero TypeSpec on a programming error.
func (s *Schema) MustTypeNamed(name string) TypeSpec {
	t, ok := s.types[name]
	if !ok {
		panic(fmt.Sprintf("schema: no type named %q", name))
	}
	return t
}

// IsPrimitiveOnly reports whether a CFN type name is one of the handful
// that every emitter special-cases instead of routing through TypeNamed
// (Tag and CfnTag carry no nested CDK type of their own — each emitter
// renders them as its CDK library's bare tag struct).
func IsPrimitiveOnly(name string) bool {
	return name == "Tag" || name == "CfnTag" || name == "aws-cdk-lib.CfnTag"
}

package ir

import "fmt"

// LowerErrorKind classifies a lowering failure, per spec.md §7.
type LowerErrorKind int

const (
	UnresolvedReference LowerErrorKind = iota
	BadGetAttTarget
	CyclicDependency
	MissingRequiredProperty
	TypeMismatch
)

func (k LowerErrorKind) String() string {
	switch k {
	case UnresolvedReference:
		return "UnresolvedReference"
	case BadGetAttTarget:
		return "BadGetAttTarget"
	case CyclicDependency:
		return "CyclicDependency"
	case MissingRequiredProperty:
		return "MissingRequiredProperty"
	case TypeMismatch:
		return "TypeMismatch"
	default:
		return "Unknown"
	}
}

// LowerError is returned by Lower on an unresolved reference, a bad GetAtt
// target, a cyclic resource graph, a missing required property, or a
// malformed intrinsic argument (TypeMismatch). Property values are not
// type-checked against the Schema.
type LowerError struct {
	Kind    LowerErrorKind
	Path    string
	Message string
}

func (e *LowerError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Path, e.Message)
}

func newLowerError(kind LowerErrorKind, path, format string, args ...any) *LowerError {
	return &LowerError{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}

// SchemaWarning is a non-fatal diagnostic surfaced alongside a successful
// Lower call, per spec.md §7: "Warnings ... are returned as a side-channel
// list on success, not merged into the Err channel."
type SchemaWarning struct {
	Path    string
	Message string
}

package golang

import (
	"github.com/lex00/cdk-from-cfn-go/internal/casing"
	"github.com/lex00/cdk-from-cfn-go/internal/primitives"
)

// identifierKind mirrors original_source/src/synthesizer/golang/mod.rs's
// IdentifierKind: the same logical name renders differently depending on
// whether it becomes an exported field, a local variable, or a package
// path segment.
type identifierKind int

const (
	exported identifierKind = iota
	unexported
	moduleName
)

// identifier converts a CloudFormation logical name into a Go identifier,
// escaping it if it collides with a reserved word the way the teacher's
// transformGoFieldName does.
func identifier(name string, kind identifierKind) string {
	switch kind {
	case exported:
		id := casing.Pascal(name)
		if id == "" {
			return "X"
		}
		return id
	case moduleName:
		id := casing.Snake(name)
		if primitives.GoKeywords[id] {
			id += "_"
		}
		return id
	default:
		id := casing.Camel(name)
		if id == "" {
			id = "v"
		}
		if primitives.GoKeywords[id] {
			id += "_"
		}
		return id
	}
}

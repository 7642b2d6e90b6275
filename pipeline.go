// Package cfnfromcdk is the public contract for the CloudFormation → CDK
// transpiler: Parse, Lower, Synthesize (spec.md §1/§6), modeled on the
// teacher's top-level contracts.go (package wetwire_aws), which played the
// same "public contract" role for the teacher's Go-DSL → CFN direction.
package cfnfromcdk

import (
	"fmt"
	"io"

	"github.com/lex00/cdk-from-cfn-go/internal/emit/csharp"
	"github.com/lex00/cdk-from-cfn-go/internal/emit/golang"
	"github.com/lex00/cdk-from-cfn-go/internal/emit/java"
	"github.com/lex00/cdk-from-cfn-go/internal/emit/python"
	"github.com/lex00/cdk-from-cfn-go/internal/emit/typescript"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/parsetree"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

// Target selects which of the five back ends Synthesize dispatches to
// (spec.md §6, `--language {typescript|python|java|go|csharp}`).
type Target int

const (
	TypeScript Target = iota
	Python
	Java
	Go
	CSharp
)

func (t Target) String() string {
	switch t {
	case TypeScript:
		return "typescript"
	case Python:
		return "python"
	case Java:
		return "java"
	case Go:
		return "go"
	case CSharp:
		return "csharp"
	default:
		return "unknown"
	}
}

// ParseTarget maps a CLI --language value to a Target.
func ParseTarget(lang string) (Target, error) {
	switch lang {
	case "typescript":
		return TypeScript, nil
	case "python":
		return Python, nil
	case "java":
		return Java, nil
	case "go":
		return Go, nil
	case "csharp":
		return CSharp, nil
	default:
		return 0, fmt.Errorf("unknown target language %q", lang)
	}
}

// Parse decodes a UTF-8 JSON or YAML CloudFormation document into a
// ParseTree. Short-form intrinsics (!Ref, !Sub, …) and the long Fn::
// equivalents both normalize to the same tree (spec.md §6, §8 property 2).
func Parse(document []byte) (*parsetree.ParseTree, error) {
	return parsetree.Parse(document)
}

// Lower resolves a ParseTree against sch into the fully-resolved,
// emitter-facing IR. Non-fatal diagnostics (an unknown resource or
// property type) ride IR.Warnings on success rather than failing the call
// (spec.md §7).
func Lower(tree *parsetree.ParseTree, sch *schema.Schema) (*ir.IR, error) {
	return ir.Lower(tree, sch)
}

// GoPackageName is the Go package name Synthesize emits into when target
// is Go; it has no equivalent for the other four targets, which derive
// their module/import shape entirely from stackName and the Schema.
const GoPackageName = "main"

// Synthesize renders program as target's idiomatic source, naming the
// generated construct class stackName, and writes it to w. This is the
// single dispatch point spec.md §1 describes as
// `IR.Synthesize(target, writer, stackName) -> error`; the only failure
// mode at this stage is a writer I/O failure (spec.md §7), which is
// wrapped in an *EmitError.
func Synthesize(program *ir.IR, sch *schema.Schema, target Target, stackName string, w io.Writer) error {
	var err error
	switch target {
	case TypeScript:
		err = typescript.Synthesize(program, sch, stackName, w)
	case Python:
		err = python.Synthesize(program, sch, stackName, w)
	case Java:
		err = java.Synthesize(program, sch, stackName, w)
	case Go:
		err = golang.Synthesize(program, sch, GoPackageName, stackName, w)
	case CSharp:
		err = csharp.Synthesize(program, sch, stackName, w)
	default:
		return fmt.Errorf("unknown target %v", target)
	}
	if err != nil {
		return &EmitError{Target: target.String(), Err: err}
	}
	return nil
}

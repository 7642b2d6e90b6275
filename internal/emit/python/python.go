// Package python is the Python CDK back end (spec.md §4.5), built by
// analogy to internal/emit/golang (original_source/ only retrieved the
// Rust project's Go synthesizer — see _INDEX.md) against real aws_cdk
// Python idiom: snake_case keyword arguments, f-string Fn::Sub, and the
// `cond if test else alt` conditional expression in place of Go's injected
// ternary helper.
package python

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/casing"
	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/emit"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/primitives"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

const indent = "    "

func identifier(name string, exported bool) string {
	if exported {
		return casing.Pascal(name)
	}
	id := casing.Snake(name)
	if id == "" {
		id = "v"
	}
	if primitives.PythonKeywords[id] {
		id += "_"
	}
	return id
}

// Synthesize renders program as a single Python source file defining a
// cdk.Stack subclass named stackName.
func Synthesize(program *ir.IR, sch *schema.Schema, stackName string, w io.Writer) error {
	code := codebuffer.New()

	code.Line("import aws_cdk as cdk")
	code.Line("from constructs import Construct")
	for _, imp := range collectImportLines(program, sch) {
		code.Line(imp)
	}
	code.Newline()

	class := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "class " + stackName + "(cdk.Stack):",
		TrailingNewline: true,
	})

	params := class.IndentWithOptions(codebuffer.Options{
		Indent:  indent,
		Leading: "def __init__(self, scope: Construct, id: str,",
	})
	for _, param := range program.ConstructorInputs {
		params.Line(constructorParameterField(param))
	}
	params.Line("**kwargs) -> None:")

	ctor := class.IndentWithOptions(codebuffer.Options{Indent: indent})
	ctor.Line("super().__init__(scope, id, **kwargs)")
	ctor.Newline()

	emitMappings(ctor, program)

	for _, cond := range program.Conditions {
		ctor.Text(identifier(cond.Name, false) + " = ")
		emitCondition(ctor, cond.Value)
		ctor.Newline()
	}
	if len(program.Conditions) > 0 {
		ctor.Newline()
	}

	for _, res := range program.Resources {
		emitResource(ctor, program, sch, res)
	}

	self := class.IndentWithOptions(codebuffer.Options{Indent: indent})
	for _, out := range program.Outputs {
		if out.Export != nil {
			outProps := self.IndentWithOptions(codebuffer.Options{
				Indent:          indent,
				Leading:         "cdk.CfnOutput(self, " + quote(out.Name) + ",",
				Trailing:        ")",
				TrailingNewline: true,
			})
			if out.Description != "" {
				outProps.Line("description=" + quote(out.Description) + ",")
			}
			outProps.Text("export_name=")
			emitValue(outProps, *out.Export)
			outProps.Line(",")
			outProps.Text("value=")
			emitValue(outProps, out.Value)
			outProps.Line(",")
		}
		self.Text("self." + identifier(out.Name, false) + " = ")
		emitValue(self, out.Value)
		self.Newline()
	}

	return code.Write(w)
}

func quote(s string) string { return strconv.Quote(s) }

// emitMappings always emits a real dict literal, even for a mapping table
// usesMapTable finds no FindInMap reference to: unlike Go, an unused local
// variable is not a compile error in Python, so there is no need for the
// Go back end's comment-out-the-unused-table trick (usesMapTable is still
// computed and kept, in case a future caller wants to warn rather than
// silently carry dead data).
func emitMappings(ctor *codebuffer.Buffer, program *ir.IR) {
	for _, mapping := range program.Mappings {
		_ = usesMapTable(program, mapping.Name)
		mapBuf := ctor.IndentWithOptions(codebuffer.Options{
			Indent:          indent,
			Leading:         identifier(mapping.Name, false) + " = {",
			Trailing:        "}",
			TrailingNewline: true,
		})
		for _, top := range mapping.Data {
			innerBuf := mapBuf.IndentWithOptions(codebuffer.Options{
				Indent:          indent,
				Leading:         quote(top.Key) + ": {",
				Trailing:        "},",
				TrailingNewline: true,
			})
			for _, entry := range top.Inner {
				innerBuf.Text(quote(entry.Key) + ": ")
				emitValue(innerBuf, entry.Value)
				innerBuf.Line(",")
			}
		}
		ctor.Newline()
	}
}

func emitResource(ctor *codebuffer.Buffer, program *ir.IR, sch *schema.Schema, res ir.ResourceInstruction) {
	module := "unknownpkg"
	ctorName := "Cfn" + identifier(res.ResourceType, true)
	if spec, ok := sch.TypeNamed(res.ResourceType); ok {
		module = pythonModuleAlias(spec.Name.Python.Package)
		ctorName = lastSegment(spec.Name.Python.Name)
	}

	prefix := ""
	if emit.IsReferencedElsewhere(program, res.Name) {
		prefix = identifier(res.Name, false) + " = "
	}

	call := ctor.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         prefix + module + "." + ctorName + "(self, " + quote(res.Name) + ",",
		Trailing:        ")",
		TrailingNewline: true,
	})
	for _, field := range res.Properties {
		if field.Value.Kind == ir.RNull {
			continue
		}
		call.Text(identifier(field.Key, false) + "=")
		emitValue(call, field.Value)
		call.Line(",")
	}
	ctor.Newline()
}

func constructorParameterField(param ir.ConstructorParameter) string {
	t := param.ConstructorType
	switch {
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveString:
		return identifier(param.Name, false) + ": str,"
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveNumber:
		return identifier(param.Name, false) + ": float,"
	case t.IsList() && t.Elem().IsPrimitive() && t.Elem().Primitive() == schema.PrimitiveString:
		return identifier(param.Name, false) + ": list[str],"
	default:
		return identifier(param.Name, false) + ",  # FIXME"
	}
}

// pythonModuleAlias derives the conventional import alias from an
// aws_cdk.aws_s3-style module path: its final dotted segment with the
// "aws_" prefix stripped, matching `from aws_cdk import aws_s3 as s3`.
func pythonModuleAlias(pkg string) string {
	parts := strings.Split(pkg, ".")
	return strings.TrimPrefix(parts[len(parts)-1], "aws_")
}

func lastSegment(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}

// collectImportLines derives one `from <package> import <module> as <alias>`
// line per distinct service package referenced by a resource, e.g.
// "aws_cdk.aws_s3" -> "from aws_cdk import aws_s3 as s3".
func collectImportLines(program *ir.IR, sch *schema.Schema) []string {
	seen := map[string]bool{}
	var lines []string
	for _, res := range program.Resources {
		spec, ok := sch.TypeNamed(res.ResourceType)
		if !ok {
			continue
		}
		pkg := spec.Name.Python.Package
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		dot := strings.LastIndex(pkg, ".")
		if dot < 0 {
			continue
		}
		parent, module := pkg[:dot], pkg[dot+1:]
		alias := strings.TrimPrefix(module, "aws_")
		lines = append(lines, "from "+parent+" import "+module+" as "+alias)
	}
	sort.Strings(lines)
	return lines
}

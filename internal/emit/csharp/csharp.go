// Package csharp is the C# CDK back end (spec.md §4.5), built by analogy
// to internal/emit/golang (original_source/ only retrieved the Rust
// project's Go synthesizer — see _INDEX.md). It targets real CDK C# object
// initializer syntax (`new CfnBucket(this, "Id", new CfnBucketProps {
// BucketName = ... })`) and PascalCase property names throughout, matching
// .NET convention.
package csharp

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

// identifier renders a PascalCase member name by default (the convention
// for C# public properties and classes); pass local=true for a method-local
// variable, which gets the camelCase + reserved-word-suffix treatment.
func identifier(name string, local bool) string {
	if !local {
		return casing.Pascal(name)
	}
	id := casing.Camel(name)
	if id == "" {
		id = "v"
	}
	if primitives.CSharpKeywords[id] {
		id += "_"
	}
	return id
}

// Synthesize renders program as a single C# source file defining a Stack
// subclass named stackName, plus a companion XProps class.
func Synthesize(program *ir.IR, sch *schema.Schema, stackName string, w io.Writer) error {
	code := codebuffer.New()

	code.Line("using Amazon.CDK;")
	code.Line("using Constructs;")
	for _, imp := range collectImportLines(program, sch) {
		code.Line(imp)
	}
	code.Newline()

	props := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "public class " + stackName + "Props : StackProps",
		Trailing:        "}",
		TrailingNewline: true,
	})
	props.Line("{")
	for _, param := range program.ConstructorInputs {
		props.Line(constructorParameterField(param))
	}
	code.Newline()

	class := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "public class " + stackName + " : Stack",
		Trailing:        "}",
		TrailingNewline: true,
	})
	class.Line("{")
	for _, out := range program.Outputs {
		class.Line("public readonly object " + identifier(out.Name, false) + "; // TODO: fix to appropriate type")
	}
	class.Newline()

	ctor := class.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "public " + stackName + "(Construct scope, string id, " + stackName + "Props props) : base(scope, id, props)",
		Trailing:        "}",
		TrailingNewline: true,
	})
	ctor.Line("{")

	emitMappings(ctor, program)

	for _, cond := range program.Conditions {
		ctor.Text("var " + identifier(cond.Name, true) + " = ")
		emitCondition(ctor, cond.Value)
		ctor.Line(";")
	}
	if len(program.Conditions) > 0 {
		ctor.Newline()
	}

	for _, res := range program.Resources {
		emitResource(ctor, program, sch, res)
	}

	for _, out := range program.Outputs {
		if out.Export == nil {
			continue
		}
		outProps := ctor.IndentWithOptions(codebuffer.Options{
			Indent:          indent,
			Leading:         "new CfnOutput(this, " + quote(out.Name) + ", new CfnOutputProps {",
			Trailing:        "});",
			TrailingNewline: true,
		})
		if out.Description != "" {
			outProps.Line("Description = " + quote(out.Description) + ",")
		}
		outProps.Text("ExportName = ")
		emitValue(outProps, *out.Export)
		outProps.Line(",")
		outProps.Text("Value = ")
		emitValue(outProps, out.Value)
		outProps.Line(",")
		ctor.Newline()
	}

	for _, out := range program.Outputs {
		ctor.Text(identifier(out.Name, false) + " = ")
		emitValue(ctor, out.Value)
		ctor.Line(";")
	}
	ctor.Line("}")

	class.Line("}")
	code.Line("}")

	return code.Write(w)
}

func quote(s string) string { return strconv.Quote(s) }

func emitMappings(ctor *codebuffer.Buffer, program *ir.IR) {
	for _, mapping := range program.Mappings {
		leafType := mapLeafType(mapping)
		used := usesMapTable(program, mapping.Name)
		if !used {
			ctor.Line("/*")
		}
		mapBuf := ctor.IndentWithOptions(codebuffer.Options{
			Indent:          indent,
			Leading:         "var " + identifier(mapping.Name, true) + " = new Dictionary<string, Dictionary<string, " + leafType + ">> {",
			Trailing:        "};",
			TrailingNewline: true,
		})
		for _, top := range mapping.Data {
			innerBuf := mapBuf.IndentWithOptions(codebuffer.Options{
				Indent:          indent,
				Leading:         "{ " + quote(top.Key) + ", new Dictionary<string, " + leafType + "> {",
				Trailing:        "} },",
				TrailingNewline: true,
			})
			for _, entry := range top.Inner {
				innerBuf.Text("{ " + quote(entry.Key) + ", ")
				emitValue(innerBuf, entry.Value)
				innerBuf.Line(" },")
			}
		}
		if !used {
			ctor.Line("*/")
		}
		ctor.Newline()
	}
}

func mapLeafType(m ir.Mapping) string {
	if m.OutputKind != ir.OutputConsistent {
		return "object"
	}
	switch m.LeafPrimitive {
	case schema.PrimitiveBoolean:
		return "bool"
	case schema.PrimitiveNumber:
		return "double"
	default:
		return "string"
	}
}

func emitResource(ctor *codebuffer.Buffer, program *ir.IR, sch *schema.Schema, res ir.ResourceInstruction) {
	className := "Cfn" + identifier(res.ResourceType, false)
	if spec, ok := sch.TypeNamed(res.ResourceType); ok {
		className = lastSegment(spec.Name.CSharp.Name)
	}

	prefix := "new "
	if emit.IsReferencedElsewhere(program, res.Name) {
		prefix = "var " + identifier(res.Name, true) + " = new "
	}

	call := ctor.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         prefix + className + "(this, " + quote(res.Name) + ", new " + className + "Props {",
		Trailing:        "});",
		TrailingNewline: true,
	})
	for _, field := range res.Properties {
		if field.Value.Kind == ir.RNull {
			continue
		}
		call.Text(identifier(field.Key, false) + " = ")
		emitValue(call, field.Value)
		call.Line(",")
	}
	ctor.Newline()
}

func constructorParameterField(param ir.ConstructorParameter) string {
	t := param.ConstructorType
	switch {
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveString:
		return "public string " + identifier(param.Name, false) + " { get; set; }"
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveNumber:
		return "public double " + identifier(param.Name, false) + " { get; set; }"
	case t.IsList() && t.Elem().IsPrimitive() && t.Elem().Primitive() == schema.PrimitiveString:
		return "public string[] " + identifier(param.Name, false) + " { get; set; }"
	default:
		return "public object " + identifier(param.Name, false) + " { get; set; } // FIXME"
	}
}

func lastSegment(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}

func collectImportLines(program *ir.IR, sch *schema.Schema) []string {
	seen := map[string]bool{}
	var lines []string
	for _, res := range program.Resources {
		spec, ok := sch.TypeNamed(res.ResourceType)
		if !ok {
			continue
		}
		pkg := spec.Name.CSharp.Package
		if seen[pkg] {
			continue
		}
		seen[pkg] = true
		lines = append(lines, "using "+pkg+";")
	}
	sort.Strings(lines)
	return lines
}

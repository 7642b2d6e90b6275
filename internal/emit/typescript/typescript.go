// Package typescript is the TypeScript CDK back end (spec.md §4.5). Built
// by analogy to internal/emit/golang — original_source/ only retrieved the
// Rust project's Go synthesizer (_INDEX.md), so this back end's call shapes
// are grounded directly in real aws-cdk-lib TypeScript idiom (cdk.Fn.*,
// cdk.Aws.*, PascalCase construct classes, camelCase property names)
// rather than a second Rust source file.
package typescript

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

const indent = "  "

func identifier(name string, exported bool) string {
	if exported {
		return casing.Pascal(name)
	}
	id := casing.Camel(name)
	if id == "" {
		id = "v"
	}
	if primitives.TypeScriptKeywords[id] {
		id += "_"
	}
	return id
}

// Synthesize renders program as a single TypeScript source file exporting
// a cdk.Stack subclass named stackName.
func Synthesize(program *ir.IR, sch *schema.Schema, stackName string, w io.Writer) error {
	code := codebuffer.New()

	code.Line(`import * as cdk from 'aws-cdk-lib';`)
	code.Line(`import { Construct } from 'constructs';`)
	for _, path := range collectImportLines(program) {
		code.Line(path)
	}
	code.Newline()

	props := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "export interface " + stackName + "Props extends cdk.StackProps {",
		Trailing:        "}",
		TrailingNewline: true,
	})
	for _, param := range program.ConstructorInputs {
		props.Line(constructorParameterField(param))
	}
	code.Newline()

	class := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "export class " + stackName + " extends cdk.Stack {",
		Trailing:        "}",
		TrailingNewline: true,
	})
	for _, out := range program.Outputs {
		class.Line("public readonly " + identifier(out.Name, false) + ": any; // TODO: fix to appropriate type")
	}
	class.Newline()

	ctor := class.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "constructor(scope: Construct, id: string, props: " + stackName + "Props) {",
		Trailing:        "}",
		TrailingNewline: true,
	})
	ctor.Line("super(scope, id, props);")
	ctor.Newline()

	emitMappings(ctor, program)

	for _, cond := range program.Conditions {
		ctor.Text("const " + identifier(cond.Name, false) + " = ")
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
			Leading:         "new cdk.CfnOutput(this, " + quote(out.Name) + ", {",
			Trailing:        "});",
			TrailingNewline: true,
		})
		if out.Description != "" {
			outProps.Text("description: " + quote(out.Description) + ",")
			outProps.Line("")
		}
		outProps.Text("exportName: ")
		emitValue(outProps, *out.Export)
		outProps.Line(",")
		outProps.Text("value: ")
		emitValue(outProps, out.Value)
		outProps.Line(",")
		ctor.Newline()
	}

	for _, out := range program.Outputs {
		ctor.Text("this." + identifier(out.Name, false) + " = ")
		emitValue(ctor, out.Value)
		ctor.Line(";")
	}

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
			Leading:         "const " + identifier(mapping.Name, false) + ": Record<string, Record<string, " + leafType + ">> = {",
			Trailing:        "};",
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
		if !used {
			ctor.Line("*/")
		}
		ctor.Newline()
	}
}

func mapLeafType(m ir.Mapping) string {
	if m.OutputKind != ir.OutputConsistent {
		return "any"
	}
	switch m.LeafPrimitive {
	case schema.PrimitiveBoolean:
		return "boolean"
	case schema.PrimitiveNumber:
		return "number"
	default:
		return "string"
	}
}

func emitResource(ctor *codebuffer.Buffer, program *ir.IR, sch *schema.Schema, res ir.ResourceInstruction) {
	pkgAlias := "unknownpkg"
	ctorName := "Cfn" + identifier(res.ResourceType, true)
	if spec, ok := sch.TypeNamed(res.ResourceType); ok {
		pkgAlias = packageAlias(spec.Name.TypeScript.Package)
		ctorName = lastSegment(spec.Name.TypeScript.Name)
	}

	prefix := "new "
	if emit.IsReferencedElsewhere(program, res.Name) {
		prefix = "const " + identifier(res.Name, false) + " = new "
	}

	call := ctor.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         prefix + pkgAlias + "." + ctorName + "(this, " + quote(res.Name) + ", {",
		Trailing:        "});",
		TrailingNewline: true,
	})
	for _, field := range res.Properties {
		if field.Value.Kind == ir.RNull {
			continue
		}
		call.Text(identifier(field.Key, false) + ": ")
		emitValue(call, field.Value)
		call.Line(",")
	}
	ctor.Newline()
}

func constructorParameterField(param ir.ConstructorParameter) string {
	t := param.ConstructorType
	switch {
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveString:
		return identifier(param.Name, false) + ": string;"
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveNumber:
		return identifier(param.Name, false) + ": number;"
	case t.IsList() && t.Elem().IsPrimitive() && t.Elem().Primitive() == schema.PrimitiveString:
		return identifier(param.Name, false) + ": string[];"
	default:
		return identifier(param.Name, false) + ": any; // FIXME"
	}
}

// packageAlias derives the conventional CDK module alias from a TypeScript
// package path, e.g. "aws-cdk-lib/aws-s3" -> "s3".
func packageAlias(pkg string) string {
	parts := strings.Split(pkg, "/")
	last := parts[len(parts)-1]
	last = strings.TrimPrefix(last, "aws-")
	return strings.ReplaceAll(last, "-", "_")
}

func lastSegment(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}

func collectImportLines(program *ir.IR) []string {
	seen := map[string]bool{}
	var lines []string
	for _, imp := range program.Imports {
		pkg := strings.Join(imp.Path, "/")
		if pkg == "aws-cdk-lib" || pkg == "constructs" {
			continue
		}
		alias := packageAlias(pkg)
		line := "import * as " + alias + " from " + quote(pkg) + ";"
		if !seen[line] {
			seen[line] = true
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)
	return lines
}

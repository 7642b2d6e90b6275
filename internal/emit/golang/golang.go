// Package golang is the "known-deficient" Go back end (spec.md §9 Open
// Question 1): it produces syntactically plausible Go source calling the
// real aws-cdk-go/jsii-runtime-go API shapes, but — like
// original_source/src/synthesizer/golang/mod.rs it is grounded on — makes
// no attempt to guarantee the output actually compiles for every input
// template (unresolvable schema types degrade to an `interface{}` field
// with an inline FIXME rather than failing synthesis).
package golang

import (
	"io"

	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/emit"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

const indent = "\t"

// Synthesize renders program as a single Go source file implementing the
// stack named stackName, in Go package packageName, writing the result to
// w. This is the Go arm of the root package's IR.Synthesize(target,
// writer, stackName) contract (spec.md §1/§6).
func Synthesize(program *ir.IR, sch *schema.Schema, packageName, stackName string, w io.Writer) error {
	code := codebuffer.New()

	code.Line("package " + packageName)
	code.Newline()

	imports := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "import (",
		Trailing:        ")",
		TrailingNewline: true,
	})
	stdlibImports := imports.Section(false)

	for _, path := range collectGoImportPaths(program) {
		imports.Line(quote(path))
	}
	imports.Line(quote("github.com/aws/constructs-go/constructs/v10"))
	imports.Line(quote("github.com/aws/jsii-runtime-go"))

	code.Newline()

	props := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "type " + stackName + "Props struct {",
		Trailing:        "}",
		TrailingNewline: true,
	})
	props.Line("awscdk.StackProps")
	for _, param := range program.ConstructorInputs {
		if param.Description != "" {
			props.Indent("/// ").Line(param.Description)
		}
		props.Line(constructorParameterField(param))
	}
	code.Newline()

	if program.Description != "" {
		code.Indent("/// ").Line(program.Description)
	}
	class := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "type " + stackName + " struct {",
		Trailing:        "}",
		TrailingNewline: true,
	})
	class.Line("awscdk.Stack")
	for _, out := range program.Outputs {
		if out.Description != "" {
			class.Indent("/// ").Line(out.Description)
		}
		class.Line(identifier(out.Name, exported) + " interface{} // TODO: fix to appropriate type")
	}
	code.Newline()

	ctor := code.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "func New" + stackName + "(scope constructs.Construct, id string, props " + stackName + "Props) *" + stackName + " {",
		Trailing:        "}",
		TrailingNewline: true,
	})

	ctx := newContext(sch, stdlibImports.Section(false), stdlibImports.Section(false), stdlibImports.Section(false), code.Section(false))

	emitMappings(ctx, ctor, program)

	ctor.Line("stack := awscdk.NewStack(scope, &id, &props.StackProps)")
	ctor.Newline()

	for _, cond := range program.Conditions {
		ctor.Text(identifier(cond.Name, unexported) + " := ")
		emitCondition(ctx, ctor, cond.Value)
		ctor.Newline()
		ctor.Newline()
	}

	for _, res := range program.Resources {
		emitResource(ctx, ctor, program, sch, res)
	}

	for _, out := range program.Outputs {
		if out.Export == nil {
			continue
		}
		outProps := ctor.IndentWithOptions(codebuffer.Options{
			Indent:          indent,
			Leading:         "awscdk.NewCfnOutput(stack, jsii.String(" + quote(out.Name) + "), &awscdk.CfnOutputProps{",
			Trailing:        "})",
			TrailingNewline: true,
		})
		if out.Description != "" {
			outProps.Line("Description: jsii.String(" + quote(out.Description) + "),")
		}
		outProps.Text("ExportName: ")
		emitValue(ctx, outProps, *out.Export, ",")
		outProps.Text("Value: ")
		emitValue(ctx, outProps, out.Value, ",")
		ctor.Newline()
	}

	fields := ctor.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "return &" + stackName + "{",
		Trailing:        "}",
		TrailingNewline: true,
	})
	fields.Line("Stack: stack,")
	for _, out := range program.Outputs {
		fields.Text(identifier(out.Name, exported) + ": ")
		emitValue(ctx, fields, out.Value, ",")
	}

	return code.Write(w)
}

func emitMappings(ctx *context, ctor *codebuffer.Buffer, program *ir.IR) {
	for _, mapping := range program.Mappings {
		leafType := mapLeafType(mapping)
		used := usesMapTable(program, mapping.Name)
		if !used {
			ctor.Line("/*")
		}
		mapBuf := ctor.IndentWithOptions(codebuffer.Options{
			Indent:          indent,
			Leading:         identifier(mapping.Name, unexported) + " := map[*string]map[*string]" + leafType + "{",
			Trailing:        "}",
			TrailingNewline: true,
		})
		for _, top := range mapping.Data {
			innerBuf := mapBuf.IndentWithOptions(codebuffer.Options{
				Indent:          indent,
				Leading:         "jsii.String(" + quote(top.Key) + "): map[*string]" + leafType + "{",
				Trailing:        "},",
				TrailingNewline: true,
			})
			for _, entry := range top.Inner {
				innerBuf.Text("jsii.String(" + quote(entry.Key) + "): ")
				emitMappingLeaf(innerBuf, entry.Value)
				innerBuf.Line(",")
			}
		}
		if !used {
			ctor.Line("*/")
		}
		ctor.Newline()
	}
}

func emitResource(ctx *context, ctor *codebuffer.Buffer, program *ir.IR, sch *schema.Schema, res ir.ResourceInstruction) {
	ns := "unknownpkg"
	ctorName := "NewCfn" + identifier(res.ResourceType, exported)
	propsType := identifier(res.ResourceType, exported) + "Props"
	if spec, ok := sch.TypeNamed(res.ResourceType); ok {
		ns = spec.Name.Golang.Package
		ctorName = "New" + spec.Name.Golang.Name
		propsType = spec.Name.Golang.Name + "Props"
	}

	prefix := ""
	if emit.IsReferencedElsewhere(program, res.Name) {
		prefix = identifier(res.Name, unexported) + " := "
	}

	params := ctor.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         prefix + ns + "." + ctorName + "(",
		Trailing:        ")",
		TrailingNewline: true,
	})
	params.Line("stack,")
	params.Line("jsii.String(" + quote(res.Name) + "),")
	propsBuf := params.IndentWithOptions(codebuffer.Options{
		Indent:          indent,
		Leading:         "&" + ns + "." + propsType + "{",
		Trailing:        "},",
		TrailingNewline: true,
	})
	for _, field := range res.Properties {
		if field.Value.Kind == ir.RNull {
			continue
		}
		propsBuf.Text(identifier(field.Key, exported) + ": ")
		emitValue(ctx, propsBuf, field.Value, ",")
	}
	ctor.Newline()
}

// constructorParameterField matches ConstructorParameter.to_golang_field():
// string, number, and list-of-string/list-of-number parameters get a
// concrete pointer type, everything else degrades to a commented
// interface{} placeholder.
func constructorParameterField(param ir.ConstructorParameter) string {
	t := param.ConstructorType
	switch {
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveString:
		return identifier(param.Name, exported) + " *string"
	case t.IsPrimitive() && t.Primitive() == schema.PrimitiveNumber:
		return identifier(param.Name, exported) + " *float64"
	case t.IsList() && t.Elem().IsPrimitive() && t.Elem().Primitive() == schema.PrimitiveString:
		return identifier(param.Name, exported) + " *[]*string"
	case t.IsList() && t.Elem().IsPrimitive() && t.Elem().Primitive() == schema.PrimitiveNumber:
		return identifier(param.Name, exported) + " *[]*float64"
	default:
		return identifier(param.Name, exported) + " interface{} /* FIXME */"
	}
}

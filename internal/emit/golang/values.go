package golang

import (
	"strconv"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

// quote renders a Go string literal. Go's strconv.Quote plays the role of
// Rust's {:?} debug formatting in original_source's golang/mod.rs.
func quote(s string) string {
	return strconv.Quote(s)
}

// emitValue renders a ResourceIr, grounded on original_source/src/
// synthesizer/golang/mod.rs's `impl GolangEmitter for ResourceIr`. If
// trailer is non-empty it is appended (and the line closed) after the
// value, matching the Rust source's `Option<&str>` trailer parameter used
// to place a trailing comma without a caller-side newline dance.
func emitValue(ctx *context, out *codebuffer.Buffer, v ir.ResourceIr, trailer string) {
	switch v.Kind {
	case ir.RNull:
		out.Text("nil")
	case ir.RBool:
		out.Text("jsii.Bool(" + strconv.FormatBool(v.Bool) + ")")
	case ir.RNumber:
		out.Text("jsii.Number(" + v.Number.String() + ")")
	case ir.RDouble:
		out.Text("jsii.Number(" + v.Double.String() + ")")
	case ir.RString:
		out.Text("jsii.String(" + quote(v.String) + ")")

	case ir.RArray:
		emitArray(ctx, out, v)
	case ir.RObject:
		emitObject(ctx, out, v)

	case ir.RBase64:
		out.Text("awscdk.Fn_Base64(")
		emitValue(ctx, out, v.Args[0], "")
		out.Text(")")

	case ir.RCidr:
		out.Text("awscdk.Fn_Cidr(")
		emitValue(ctx, out, v.Args[0], "")
		out.Text(", ")
		emitValue(ctx, out, v.Args[1], "")
		out.Text(", ")
		emitCidrMask(ctx, out, v.Args[2])
		out.Text(")")

	case ir.RGetAZs:
		out.Text("awscdk.Fn_GetAzs(")
		emitValue(ctx, out, v.Args[0], "")
		out.Text(")")

	case ir.RIf:
		ctx.insertTernary()
		call := out.IndentWithOptions(codebuffer.Options{
			Indent:   "\t",
			Leading:  ternaryHelper + "(",
			Trailing: ")",
		})
		call.Line(identifier(v.IfCondition, unexported) + ",")
		emitValue(ctx, call, v.Args[0], ",")
		emitValue(ctx, call, v.Args[1], ",")

	case ir.RImportValue:
		out.Text("awscdk.Fn_ImportValue(jsii.String(" + quote(v.Args[0].String) + "))")

	case ir.RJoin:
		items := out.IndentWithOptions(codebuffer.Options{
			Indent:  "\t",
			Leading: "awscdk.Fn_Join(jsii.String(" + quote(sepOf(v.Args[0])) + "), &[]*string{",
			Trailing: "})",
		})
		for _, item := range v.Args[1].Array {
			emitValue(ctx, items, item, ",")
		}

	case ir.RMap:
		out.Text(identifier(v.Args[0].String, unexported) + "[")
		emitValue(ctx, out, v.Args[1], "")
		out.Text("][")
		emitValue(ctx, out, v.Args[2], "")
		out.Text("]")

	case ir.RSelect:
		// Fn::Select's index argument is always a CFN literal integer; only
		// the list side can remain a runtime expression after lowering.
		out.Text("awscdk.Fn_Select(jsii.Number(" + strconv.Itoa(int(v.Args[0].Number)) + "), ")
		emitValue(ctx, out, v.Args[1], "")
		out.Text(")")

	case ir.RSplit:
		out.Text("awscdk.Fn_Split(jsii.String(" + quote(sepOf(v.Args[0])) + "), ")
		emitValue(ctx, out, v.Args[1], "")
		out.Text(")")

	case ir.RSub:
		emitSub(ctx, out, v)

	case ir.RRef:
		emitReference(ctx, out, v.Ref)
	}

	if trailer != "" {
		out.Line(trailer)
	}
}

func sepOf(v ir.ResourceIr) string {
	if v.Kind == ir.RString {
		return v.String
	}
	return ""
}

// emitCidrMask matches the Rust source's special-case: a literal
// numeric/string mask renders straight to a quoted string, anything else
// falls back to fmt.Sprintf("%v", ...).
func emitCidrMask(ctx *context, out *codebuffer.Buffer, mask ir.ResourceIr) {
	switch mask.Kind {
	case ir.RNumber:
		out.Text("jsii.String(\"" + mask.Number.String() + "\")")
	case ir.RString:
		out.Text("jsii.String(" + quote(mask.String) + ")")
	default:
		ctx.importFmt()
		out.Text("jsii.String(fmt.Sprintf(\"%v\", ")
		emitValue(ctx, out, mask, "")
		out.Text("))")
	}
}

// emitSub renders an Fn::Sub as an fmt.Sprintf call, one %v per hole, with
// literal/bool/number/string holes inlined directly into the format
// string instead of being passed as a Sprintf argument (mirroring the
// Rust source's `ResourceIr::Sub` arm).
func emitSub(ctx *context, out *codebuffer.Buffer, v ir.ResourceIr) {
	var pattern strings.Builder
	for _, part := range v.SubParts {
		if !part.IsHole {
			pattern.WriteString(part.Literal)
			continue
		}
		switch part.Value.Kind {
		case ir.RBool:
			pattern.WriteString(strconv.FormatBool(part.Value.Bool))
		case ir.RDouble:
			pattern.WriteString(part.Value.Double.String())
		case ir.RNumber:
			pattern.WriteString(part.Value.Number.String())
		case ir.RString:
			pattern.WriteString(part.Value.String)
		default:
			pattern.WriteString("%v")
		}
	}
	ctx.importFmt()
	out.Text("jsii.String(fmt.Sprintf(" + quote(pattern.String()))
	for _, part := range v.SubParts {
		if !part.IsHole {
			continue
		}
		switch part.Value.Kind {
		case ir.RBool, ir.RDouble, ir.RNumber, ir.RString:
			continue
		default:
			out.Text(", ")
			emitValue(ctx, out, *part.Value, "")
		}
	}
	out.Text("))")
}

func emitArray(ctx *context, out *codebuffer.Buffer, v ir.ResourceIr) {
	elemType := "interface{} /* FIXME */"
	if v.TypeRef != nil && v.TypeRef.IsList() {
		elemType = golangArrayElemType(ctx, v.TypeRef.Elem())
	}
	items := out.IndentWithOptions(codebuffer.Options{
		Indent:  "\t",
		Leading: "&[]" + elemType + "{",
		Trailing: "}",
	})
	for _, item := range v.Array {
		emitValue(ctx, items, item, ",")
	}
}

func emitObject(ctx *context, out *codebuffer.Buffer, v ir.ResourceIr) {
	leading := "&struct{}{} /* FIXME: untyped object */"
	if v.TypeRef != nil && v.TypeRef.IsNamed() {
		if spec, ok := ctx.schema.TypeNamed(v.TypeRef.Name()); ok {
			leading = "&" + spec.Name.Golang.Package + "." + spec.Name.Golang.Name + "{"
		}
	}
	props := out.IndentWithOptions(codebuffer.Options{
		Indent:  "\t",
		Leading: leading,
		Trailing: "}",
	})
	for _, field := range v.Object {
		props.Text(identifier(field.Key, exported) + ": ")
		emitValue(ctx, props, field.Value, ",")
	}
}

// golangArrayElemType renders the Go element type of a slice property,
// grounded on the Rust source's Array-structure match. Timestamp is the
// one primitive that back-patches an import, mirroring the asymmetry in
// original_source (the bare AsGolang impl used elsewhere never imports
// time on its own).
func golangArrayElemType(ctx *context, t schema.TypeReference) string {
	switch {
	case t.IsNamed():
		if t.Name() == "aws-cdk-lib.CfnTag" || schema.IsPrimitiveOnly(t.Name()) {
			return "*awscdk.CfnTag"
		}
		if spec, ok := ctx.schema.TypeNamed(t.Name()); ok {
			return "*" + spec.Name.Golang.Package + "." + spec.Name.Golang.Name
		}
		return "interface{} /* FIXME: " + t.Name() + " */"
	case t.IsPrimitive():
		switch t.Primitive() {
		case schema.PrimitiveBoolean:
			return "*bool"
		case schema.PrimitiveNumber:
			return "*float64"
		case schema.PrimitiveJSON:
			return "interface{}"
		case schema.PrimitiveTimestamp:
			ctx.importTime()
			return "time.Time"
		case schema.PrimitiveString:
			return "*string"
		default:
			return "awscdk.IResolvable"
		}
	case t.IsList():
		return "[]" + golangPlainType(ctx, t.Elem())
	case t.IsMap():
		return "map[string]" + golangPlainType(ctx, t.Elem())
	default:
		return "interface{}"
	}
}

// golangPlainType is the non-importing counterpart used for nested
// List/Map element types, matching the Rust source's plain AsGolang impl.
func golangPlainType(ctx *context, t schema.TypeReference) string {
	switch {
	case t.IsNamed():
		if t.Name() == "aws-cdk-lib.CfnTag" || schema.IsPrimitiveOnly(t.Name()) {
			return "*awscdk.CfnTag"
		}
		if spec, ok := ctx.schema.TypeNamed(t.Name()); ok {
			return "*" + spec.Name.Golang.Package + "." + spec.Name.Golang.Name
		}
		return "interface{} /* FIXME: " + t.Name() + " */"
	case t.IsPrimitive():
		switch t.Primitive() {
		case schema.PrimitiveBoolean:
			return "*bool"
		case schema.PrimitiveNumber:
			return "*float64"
		case schema.PrimitiveString:
			return "*string"
		case schema.PrimitiveTimestamp:
			return "*time.Time"
		case schema.PrimitiveJSON:
			return "interface{}"
		default:
			return "awscdk.IResolvable"
		}
	case t.IsList():
		return "*[]" + golangPlainType(ctx, t.Elem())
	case t.IsMap():
		return "*map[string]" + golangPlainType(ctx, t.Elem())
	default:
		return "interface{}"
	}
}

package python

import (
	"strconv"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
)

func emitValue(out *codebuffer.Buffer, v ir.ResourceIr) {
	switch v.Kind {
	case ir.RNull:
		out.Text("None")
	case ir.RBool:
		if v.Bool {
			out.Text("True")
		} else {
			out.Text("False")
		}
	case ir.RNumber:
		out.Text(v.Number.String())
	case ir.RDouble:
		out.Text(v.Double.String())
	case ir.RString:
		out.Text(quote(v.String))

	case ir.RArray:
		items := out.IndentWithOptions(codebuffer.Options{Indent: indent, Leading: "[", Trailing: "]"})
		for _, item := range v.Array {
			emitValue(items, item)
			items.Line(",")
		}
	case ir.RObject:
		props := out.IndentWithOptions(codebuffer.Options{Indent: indent, Leading: "{", Trailing: "}"})
		for _, field := range v.Object {
			props.Text(quote(field.Key) + ": ")
			emitValue(props, field.Value)
			props.Line(",")
		}

	case ir.RBase64:
		out.Text("cdk.Fn.base64(")
		emitValue(out, v.Args[0])
		out.Text(")")

	case ir.RCidr:
		out.Text("cdk.Fn.cidr(")
		emitValue(out, v.Args[0])
		out.Text(", ")
		emitValue(out, v.Args[1])
		out.Text(", ")
		emitValue(out, v.Args[2])
		out.Text(")")

	case ir.RGetAZs:
		out.Text("cdk.Fn.get_azs(")
		emitValue(out, v.Args[0])
		out.Text(")")

	case ir.RIf:
		emitValue(out, v.Args[0])
		out.Text(" if " + identifier(v.IfCondition, false) + " else ")
		emitValue(out, v.Args[1])

	case ir.RImportValue:
		out.Text("cdk.Fn.import_value(" + quote(v.Args[0].String) + ")")

	case ir.RJoin:
		out.Text("cdk.Fn.join(" + quote(sepOf(v.Args[0])) + ", ")
		emitValue(out, v.Args[1])
		out.Text(")")

	case ir.RMap:
		out.Text(identifier(v.Args[0].String, false) + "[")
		emitValue(out, v.Args[1])
		out.Text("][")
		emitValue(out, v.Args[2])
		out.Text("]")

	case ir.RSelect:
		out.Text("cdk.Fn.select(" + strconv.Itoa(int(v.Args[0].Number)) + ", ")
		emitValue(out, v.Args[1])
		out.Text(")")

	case ir.RSplit:
		out.Text("cdk.Fn.split(" + quote(sepOf(v.Args[0])) + ", ")
		emitValue(out, v.Args[1])
		out.Text(")")

	case ir.RSub:
		emitSub(out, v)

	case ir.RRef:
		emitReference(out, v.Ref)
	}
}

func sepOf(v ir.ResourceIr) string {
	if v.Kind == ir.RString {
		return v.String
	}
	return ""
}

// emitSub renders an Fn::Sub as an f-string.
func emitSub(out *codebuffer.Buffer, v ir.ResourceIr) {
	var b strings.Builder
	b.WriteString(`f"`)
	for _, part := range v.SubParts {
		if !part.IsHole {
			b.WriteString(escapeFString(part.Literal))
			continue
		}
		b.WriteString("{")
		tmp := codebuffer.New()
		emitValue(tmp, *part.Value)
		b.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
		b.WriteString("}")
	}
	b.WriteString(`"`)
	out.Text(b.String())
}

func escapeFString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "{", "{{")
	s = strings.ReplaceAll(s, "}", "}}")
	return s
}

func emitReference(out *codebuffer.Buffer, ref *ir.Reference) {
	switch ref.Origin {
	case ir.OriginCondition:
		out.Text(identifier(ref.Name, false))
	case ir.OriginGetAttribute:
		out.Text(identifier(ref.Name, false) + ".attr_" + strings.ToLower(ref.Attribute))
	case ir.OriginLogicalId:
		out.Text(identifier(ref.Name, false) + ".ref")
	case ir.OriginParameter:
		out.Text(identifier(ref.Name, false))
	case ir.OriginPseudoParameter:
		out.Text("cdk.Aws." + pseudoConstant(ref.Pseudo))
	}
}

func pseudoConstant(p ir.PseudoParameter) string {
	switch p {
	case ir.AccountId:
		return "ACCOUNT_ID"
	case ir.Partition:
		return "PARTITION"
	case ir.Region:
		return "REGION"
	case ir.StackId:
		return "STACK_ID"
	case ir.StackName:
		return "STACK_NAME"
	case ir.URLSuffix:
		return "URL_SUFFIX"
	case ir.NotificationArns:
		return "NOTIFICATION_ARNS"
	default:
		return "ACCOUNT_ID"
	}
}

func emitCondition(out *codebuffer.Buffer, c ir.ConditionIr) {
	switch c.Kind {
	case ir.CRef:
		out.Text(identifier(c.RefName, false))
	case ir.CAnd:
		emitJoinedBool(out, c.Operands, " and ")
	case ir.COr:
		emitJoinedBool(out, c.Operands, " or ")
	case ir.CNot:
		out.Text("not ")
		emitCondition(out, c.Operands[0])
	case ir.CEquals:
		emitValue(out, *c.Left)
		out.Text(" == ")
		emitValue(out, *c.Right)
	case ir.CMap:
		out.Text(identifier(c.MapArgs[0].String, false) + "[")
		emitValue(out, c.MapArgs[1])
		out.Text("][")
		emitValue(out, c.MapArgs[2])
		out.Text("]")
	}
}

func emitJoinedBool(out *codebuffer.Buffer, operands []ir.ConditionIr, sep string) {
	for i, op := range operands {
		if i > 0 {
			out.Text(sep)
		}
		out.Text("(")
		emitCondition(out, op)
		out.Text(")")
	}
}

func usesMapTable(program *ir.IR, name string) bool {
	for _, cond := range program.Conditions {
		if conditionUsesMap(cond.Value, name) {
			return true
		}
	}
	for _, res := range program.Resources {
		for _, f := range res.Properties {
			if valueUsesMap(f.Value, name) {
				return true
			}
		}
		if res.Metadata != nil && valueUsesMap(*res.Metadata, name) {
			return true
		}
		if res.UpdatePolicy != nil && valueUsesMap(*res.UpdatePolicy, name) {
			return true
		}
	}
	for _, out := range program.Outputs {
		if valueUsesMap(out.Value, name) {
			return true
		}
		if out.Export != nil && valueUsesMap(*out.Export, name) {
			return true
		}
	}
	return false
}

func conditionUsesMap(c ir.ConditionIr, name string) bool {
	switch c.Kind {
	case ir.CAnd, ir.COr, ir.CNot:
		for _, op := range c.Operands {
			if conditionUsesMap(op, name) {
				return true
			}
		}
		return false
	case ir.CEquals:
		return valueUsesMap(*c.Left, name) || valueUsesMap(*c.Right, name)
	case ir.CMap:
		return c.MapArgs[0].String == name
	default:
		return false
	}
}

func valueUsesMap(v ir.ResourceIr, name string) bool {
	switch v.Kind {
	case ir.RMap:
		for _, arg := range v.Args {
			if valueUsesMap(arg, name) {
				return true
			}
		}
		return v.Args[0].String == name
	case ir.RArray:
		for _, item := range v.Array {
			if valueUsesMap(item, name) {
				return true
			}
		}
		return false
	case ir.RObject:
		for _, f := range v.Object {
			if valueUsesMap(f.Value, name) {
				return true
			}
		}
		return false
	case ir.RSub:
		for _, part := range v.SubParts {
			if part.IsHole && valueUsesMap(*part.Value, name) {
				return true
			}
		}
		return false
	case ir.RIf, ir.RCidr, ir.RJoin, ir.RSelect, ir.RSplit, ir.RBase64, ir.RGetAZs, ir.RImportValue:
		for _, arg := range v.Args {
			if valueUsesMap(arg, name) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

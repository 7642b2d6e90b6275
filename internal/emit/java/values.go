package java

import (
	"strconv"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
)

func emitValue(out *codebuffer.Buffer, v ir.ResourceIr) {
	switch v.Kind {
	case ir.RNull:
		out.Text("null")
	case ir.RBool:
		out.Text(strconv.FormatBool(v.Bool))
	case ir.RNumber:
		out.Text(v.Number.String())
	case ir.RDouble:
		out.Text(v.Double.String())
	case ir.RString:
		out.Text(quote(v.String))

	case ir.RArray:
		out.Text("List.of(")
		for i, item := range v.Array {
			if i > 0 {
				out.Text(", ")
			}
			emitValue(out, item)
		}
		out.Text(")")
	case ir.RObject:
		out.Text("Map.of(")
		for i, field := range v.Object {
			if i > 0 {
				out.Text(", ")
			}
			out.Text(quote(field.Key) + ", ")
			emitValue(out, field.Value)
		}
		out.Text(")")

	case ir.RBase64:
		out.Text("Fn.base64(")
		emitValue(out, v.Args[0])
		out.Text(")")

	case ir.RCidr:
		out.Text("Fn.cidr(")
		emitValue(out, v.Args[0])
		out.Text(", ")
		emitValue(out, v.Args[1])
		out.Text(", ")
		emitValue(out, v.Args[2])
		out.Text(")")

	case ir.RGetAZs:
		out.Text("Fn.getAzs(")
		emitValue(out, v.Args[0])
		out.Text(")")

	case ir.RIf:
		out.Text(identifier(v.IfCondition, false) + " ? ")
		emitValue(out, v.Args[0])
		out.Text(" : ")
		emitValue(out, v.Args[1])

	case ir.RImportValue:
		out.Text("Fn.importValue(" + quote(v.Args[0].String) + ")")

	case ir.RJoin:
		out.Text("Fn.join(" + quote(sepOf(v.Args[0])) + ", ")
		emitValue(out, v.Args[1])
		out.Text(")")

	case ir.RMap:
		out.Text(identifier(v.Args[0].String, false) + ".get(")
		emitValue(out, v.Args[1])
		out.Text(").get(")
		emitValue(out, v.Args[2])
		out.Text(")")

	case ir.RSelect:
		out.Text("Fn.select(" + strconv.Itoa(int(v.Args[0].Number)) + ", ")
		emitValue(out, v.Args[1])
		out.Text(")")

	case ir.RSplit:
		out.Text("Fn.split(" + quote(sepOf(v.Args[0])) + ", ")
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

// emitSub renders an Fn::Sub as String.format, one %s per hole, mirroring
// the Go back end's fmt.Sprintf approach since Java has no native string
// interpolation.
func emitSub(out *codebuffer.Buffer, v ir.ResourceIr) {
	var pattern strings.Builder
	var holes []ir.ResourceIr
	for _, part := range v.SubParts {
		if !part.IsHole {
			pattern.WriteString(strings.ReplaceAll(part.Literal, "%", "%%"))
			continue
		}
		pattern.WriteString("%s")
		holes = append(holes, *part.Value)
	}
	out.Text("String.format(" + quote(pattern.String()))
	for _, h := range holes {
		out.Text(", ")
		emitValue(out, h)
	}
	out.Text(")")
}

func emitReference(out *codebuffer.Buffer, ref *ir.Reference) {
	switch ref.Origin {
	case ir.OriginCondition:
		out.Text(identifier(ref.Name, false))
	case ir.OriginGetAttribute:
		out.Text(identifier(ref.Name, false) + ".getAttr" + identifier(ref.Attribute, true) + "()")
	case ir.OriginLogicalId:
		out.Text(identifier(ref.Name, false) + ".getRef()")
	case ir.OriginParameter:
		out.Text("props." + identifier(ref.Name, false))
	case ir.OriginPseudoParameter:
		out.Text("Aws." + pseudoConstant(ref.Pseudo))
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
		emitJoinedBool(out, c.Operands, " && ")
	case ir.COr:
		emitJoinedBool(out, c.Operands, " || ")
	case ir.CNot:
		out.Text("!")
		emitCondition(out, c.Operands[0])
	case ir.CEquals:
		out.Text("java.util.Objects.equals(")
		emitValue(out, *c.Left)
		out.Text(", ")
		emitValue(out, *c.Right)
		out.Text(")")
	case ir.CMap:
		out.Text(identifier(c.MapArgs[0].String, false) + ".get(")
		emitValue(out, c.MapArgs[1])
		out.Text(").get(")
		emitValue(out, c.MapArgs[2])
		out.Text(")")
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

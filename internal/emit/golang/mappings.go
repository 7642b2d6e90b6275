package golang

import (
	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

// mapLeafType renders the Go type every second-level value of a lowered
// Mapping shares, matching original_source's `match mapping.output_type()`.
func mapLeafType(m ir.Mapping) string {
	if m.OutputKind != ir.OutputConsistent {
		return "interface{}"
	}
	switch m.LeafPrimitive {
	case schema.PrimitiveBoolean:
		return "*bool"
	case schema.PrimitiveNumber:
		return "*float64"
	default:
		return "*string"
	}
}

// emitMappingLeaf renders one Mappings leaf value using the map-literal
// idiom (bare jsii.X(...) calls, no referencing types), since CFN mapping
// values are always literal scalars or lists of strings, never
// intrinsics — mirroring the Rust source's dedicated MappingInnerValue
// match instead of routing through the general ResourceIr emitter.
func emitMappingLeaf(out *codebuffer.Buffer, v ir.ResourceIr) {
	switch v.Kind {
	case ir.RBool:
		out.Text("jsii.Bool(" + boolLiteral(v.Bool) + ")")
	case ir.RNumber:
		out.Text("jsii.Number(" + v.Number.String() + ")")
	case ir.RDouble:
		out.Text("jsii.Number(" + v.Double.String() + ")")
	case ir.RString:
		out.Text("jsii.String(" + quote(v.String) + ")")
	case ir.RArray:
		list := out.IndentWithOptions(codebuffer.Options{
			Indent:  "\t",
			Leading: "[]*string{",
			Trailing: "}",
		})
		for _, item := range v.Array {
			list.Line("jsii.String(" + quote(item.String) + "),")
		}
	default:
		out.Text("nil")
	}
}

func boolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// usesMapTable reports whether any condition, resource, or output in the
// program references the named Mappings table, matching the Rust
// source's `Inspectable` trait — used to decide whether a lowered mapping
// is commented out as dead code (Go is merciless about unused locals).
func usesMapTable(program *ir.IR, name string) bool {
	for _, c := range program.Conditions {
		if conditionUsesMap(c.Value, name) {
			return true
		}
	}
	for _, r := range program.Resources {
		for _, f := range r.Properties {
			if valueUsesMap(f.Value, name) {
				return true
			}
		}
		if r.Metadata != nil && valueUsesMap(*r.Metadata, name) {
			return true
		}
		if r.UpdatePolicy != nil && valueUsesMap(*r.UpdatePolicy, name) {
			return true
		}
	}
	for _, o := range program.Outputs {
		if valueUsesMap(o.Value, name) {
			return true
		}
		if o.Export != nil && valueUsesMap(*o.Export, name) {
			return true
		}
	}
	return false
}

func conditionUsesMap(c ir.ConditionIr, name string) bool {
	switch c.Kind {
	case ir.CEquals:
		return valueUsesMap(*c.Left, name) || valueUsesMap(*c.Right, name)
	case ir.CNot:
		return conditionUsesMap(c.Operands[0], name)
	case ir.CAnd, ir.COr:
		for _, op := range c.Operands {
			if conditionUsesMap(op, name) {
				return true
			}
		}
		return false
	case ir.CMap:
		return c.MapArgs[0].String == name
	default:
		return false
	}
}

func valueUsesMap(v ir.ResourceIr, name string) bool {
	switch v.Kind {
	case ir.RSub:
		for _, part := range v.SubParts {
			if part.IsHole && valueUsesMap(*part.Value, name) {
				return true
			}
		}
		return false
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
	case ir.RCidr:
		return valueUsesMap(v.Args[0], name) || valueUsesMap(v.Args[1], name) || valueUsesMap(v.Args[2], name)
	case ir.RGetAZs:
		return valueUsesMap(v.Args[0], name)
	case ir.RIf:
		return valueUsesMap(v.Args[0], name) || valueUsesMap(v.Args[1], name)
	case ir.RJoin:
		for _, item := range v.Args[1].Array {
			if valueUsesMap(item, name) {
				return true
			}
		}
		return false
	case ir.RMap:
		return v.Args[0].String == name || valueUsesMap(v.Args[1], name) || valueUsesMap(v.Args[2], name)
	case ir.RSelect:
		return valueUsesMap(v.Args[1], name)
	case ir.RSplit:
		return valueUsesMap(v.Args[1], name)
	case ir.RBase64:
		return valueUsesMap(v.Args[0], name)
	default:
		return false
	}
}

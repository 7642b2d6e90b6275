package ir

import (
	"fmt"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/parsetree"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

type lowerCtx struct {
	tree   *parsetree.ParseTree
	schema *schema.Schema

	// currentRefs accumulates the logical ids referenced while lowering
	// the resource currently being processed; nil outside that scope.
	currentRefs map[string]struct{}

	warnings []SchemaWarning
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// Lower converts a ParseTree into the resolved IR, per spec.md §4.2.
func Lower(tree *parsetree.ParseTree, sch *schema.Schema) (*IR, error) {
	ctx := &lowerCtx{tree: tree, schema: sch}

	conditions, err := lowerConditions(tree, ctx)
	if err != nil {
		return nil, err
	}

	resources, err := lowerResources(tree, ctx)
	if err != nil {
		return nil, err
	}
	ordered, err := topoSort(resources)
	if err != nil {
		return nil, err
	}

	outputs, err := lowerOutputs(tree, ctx)
	if err != nil {
		return nil, err
	}

	result := &IR{
		Imports:           synthesizeImports(ordered, sch),
		ConstructorInputs: lowerParameters(tree, ctx),
		Mappings:          lowerMappings(tree, ctx),
		Conditions:        conditions,
		Resources:         ordered,
		Outputs:           outputs,
		Description:       tree.Description,
		Warnings:          ctx.warnings,
	}
	return result, nil
}

func (ctx *lowerCtx) isConditional(resourceName string) bool {
	for i := range ctx.tree.Resources {
		if ctx.tree.Resources[i].LogicalID == resourceName {
			return ctx.tree.Resources[i].Condition != ""
		}
	}
	return false
}

func (ctx *lowerCtx) trackReference(ref *Reference) {
	if ctx.currentRefs == nil {
		return
	}
	if ref.Origin == OriginLogicalId || ref.Origin == OriginGetAttribute {
		ctx.currentRefs[ref.Name] = struct{}{}
	}
}

func (ctx *lowerCtx) resolveRefName(name, path string) (*Reference, error) {
	if strings.HasPrefix(name, "AWS::") {
		p, ok := pseudoParameterNames[name]
		if !ok {
			return nil, newLowerError(UnresolvedReference, path, "unknown pseudo-parameter %q", name)
		}
		return &Reference{Origin: OriginPseudoParameter, Pseudo: p}, nil
	}
	if ctx.tree.HasParameter(name) {
		return &Reference{Origin: OriginParameter, Name: name}, nil
	}
	if ctx.tree.HasResource(name) {
		return &Reference{Origin: OriginLogicalId, Name: name, Conditional: ctx.isConditional(name)}, nil
	}
	return nil, newLowerError(UnresolvedReference, path, "%q does not name a parameter, resource, or pseudo-parameter", name)
}

// lowerValue converts a parse-domain value into ResourceIr, threading the
// Schema's type hint for the position so Array/Object carry a TypeRef
// (spec.md §4.2 "Property typing").
func lowerValue(v parsetree.Value, hint schema.TypeReference, path string, ctx *lowerCtx) (ResourceIr, error) {
	switch v.Kind {
	case parsetree.KindNull:
		return Null(), nil
	case parsetree.KindBool:
		return Bool(v.Bool), nil
	case parsetree.KindNumber:
		return Number(v.Number), nil
	case parsetree.KindDouble:
		return Double(v.Double), nil
	case parsetree.KindString:
		return String(v.String), nil
	case parsetree.KindArray:
		elemHint := schema.TypeReference{}
		if hint.IsList() {
			elemHint = hint.Elem()
		}
		items := make([]ResourceIr, 0, len(v.Array))
		for i, el := range v.Array {
			lowered, err := lowerValue(el, elemHint, indexPath(path, i), ctx)
			if err != nil {
				return ResourceIr{}, err
			}
			items = append(items, lowered)
		}
		h := hint
		return ResourceIr{Kind: RArray, Array: items, TypeRef: &h}, nil
	case parsetree.KindObject:
		fieldHints := map[string]schema.TypeReference{}
		if hint.IsNamed() {
			if spec, ok := ctx.schema.TypeNamed(hint.Name()); ok {
				fieldHints = spec.Properties
			} else {
				ctx.warnings = append(ctx.warnings, SchemaWarning{Path: path, Message: fmt.Sprintf("unknown type %q", hint.Name())})
			}
		}
		fields := make([]ResourceIrField, 0, len(v.Object))
		for _, f := range v.Object {
			lowered, err := lowerValue(f.Value, fieldHints[f.Key], childPath(path, f.Key), ctx)
			if err != nil {
				return ResourceIr{}, err
			}
			fields = append(fields, ResourceIrField{Key: f.Key, Value: lowered})
		}
		h := hint
		return ResourceIr{Kind: RObject, Object: fields, TypeRef: &h}, nil
	case parsetree.KindIntrinsic:
		return lowerIntrinsic(v.Intrinsic, hint, path, ctx)
	default:
		return ResourceIr{}, newLowerError(TypeMismatch, path, "unrecognized value kind")
	}
}

func lowerArgsN(args []parsetree.Value, path string, ctx *lowerCtx) ([]ResourceIr, error) {
	out := make([]ResourceIr, 0, len(args))
	for i, a := range args {
		lowered, err := lowerValue(a, schema.TypeReference{}, indexPath(path, i), ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, lowered)
	}
	return out, nil
}

func lowerIntrinsic(intr *parsetree.Intrinsic, hint schema.TypeReference, path string, ctx *lowerCtx) (ResourceIr, error) {
	switch intr.Kind {
	case parsetree.Ref:
		ref, err := ctx.resolveRefName(intr.RefName, path)
		if err != nil {
			return ResourceIr{}, err
		}
		if ref.Origin == OriginPseudoParameter && ref.Pseudo == NoValue {
			return Null(), nil
		}
		ctx.trackReference(ref)
		return ResourceIr{Kind: RRef, Ref: ref}, nil

	case parsetree.GetAtt:
		if !ctx.tree.HasResource(intr.GetAttLogical) {
			return ResourceIr{}, newLowerError(BadGetAttTarget, path, "Fn::GetAtt target %q is not a declared resource", intr.GetAttLogical)
		}
		ref := &Reference{Origin: OriginGetAttribute, Name: intr.GetAttLogical, Attribute: intr.GetAttAttribute, Conditional: ctx.isConditional(intr.GetAttLogical)}
		ctx.trackReference(ref)
		return ResourceIr{Kind: RRef, Ref: ref}, nil

	case parsetree.Sub:
		parts, err := lowerSubTemplate(intr.SubTemplate, intr.SubReplacements, path, ctx)
		if err != nil {
			return ResourceIr{}, err
		}
		return ResourceIr{Kind: RSub, SubParts: parts}, nil

	case parsetree.FindInMap:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RMap, Args: args}, err

	case parsetree.Join:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RJoin, Args: args}, err

	case parsetree.Select:
		args, err := lowerArgsN(intr.Args, path, ctx)
		if err != nil {
			return ResourceIr{}, err
		}
		if args[0].Kind == RNumber && args[1].Kind == RArray {
			idx := int(args[0].Number)
			if idx < 0 || idx >= len(args[1].Array) {
				return ResourceIr{}, newLowerError(TypeMismatch, path, "Fn::Select index %d out of range (len %d)", idx, len(args[1].Array))
			}
			return args[1].Array[idx], nil
		}
		return ResourceIr{Kind: RSelect, Args: args}, nil

	case parsetree.Split:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RSplit, Args: args}, err

	case parsetree.Base64:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RBase64, Args: args}, err

	case parsetree.Cidr:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RCidr, Args: args}, err

	case parsetree.GetAZs:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RGetAZs, Args: args}, err

	case parsetree.If:
		condName := intr.Args[0].String
		if !ctx.tree.HasCondition(condName) {
			return ResourceIr{}, newLowerError(UnresolvedReference, path, "Fn::If references unknown condition %q", condName)
		}
		thenV, err := lowerValue(intr.Args[1], hint, indexPath(path, 1), ctx)
		if err != nil {
			return ResourceIr{}, err
		}
		elseV, err := lowerValue(intr.Args[2], hint, indexPath(path, 2), ctx)
		if err != nil {
			return ResourceIr{}, err
		}
		return ResourceIr{Kind: RIf, IfCondition: condName, Args: []ResourceIr{thenV, elseV}}, nil

	case parsetree.ImportValue:
		args, err := lowerArgsN(intr.Args, path, ctx)
		return ResourceIr{Kind: RImportValue, Args: args}, err

	default:
		return ResourceIr{}, newLowerError(TypeMismatch, path, "%s is only valid inside a Condition", intr.Kind)
	}
}

// lowerSubTemplate splits a Fn::Sub template into alternating literal and
// hole SubParts (spec.md §4.2 step 3). A hole name resolves first against
// the inline replacement map, then as a Ref (including dotted GetAtt form).
func lowerSubTemplate(template string, replacements []parsetree.ObjectField, path string, ctx *lowerCtx) ([]SubPart, error) {
	replMap := make(map[string]parsetree.Value, len(replacements))
	for _, r := range replacements {
		replMap[r.Key] = r.Value
	}

	var parts []SubPart
	var literal strings.Builder
	i := 0
	for i < len(template) {
		if template[i] == '$' && i+1 < len(template) && template[i+1] == '{' {
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				literal.WriteByte(template[i])
				i++
				continue
			}
			name := template[i+2 : i+2+end]
			if literal.Len() > 0 {
				parts = append(parts, SubPart{Literal: literal.String()})
				literal.Reset()
			}
			hole, err := lowerSubHole(name, replMap, path, ctx)
			if err != nil {
				return nil, err
			}
			parts = append(parts, SubPart{IsHole: true, Value: &hole})
			i = i + 2 + end + 1
			continue
		}
		literal.WriteByte(template[i])
		i++
	}
	if literal.Len() > 0 || len(parts) == 0 {
		parts = append(parts, SubPart{Literal: literal.String()})
	}
	return parts, nil
}

func lowerSubHole(name string, replMap map[string]parsetree.Value, path string, ctx *lowerCtx) (ResourceIr, error) {
	if rv, ok := replMap[name]; ok {
		return lowerValue(rv, schema.TypeReference{}, childPath(path, name), ctx)
	}
	if dot := strings.IndexByte(name, '.'); dot >= 0 && ctx.tree.HasResource(name[:dot]) {
		logical, attr := name[:dot], name[dot+1:]
		ref := &Reference{Origin: OriginGetAttribute, Name: logical, Attribute: attr, Conditional: ctx.isConditional(logical)}
		ctx.trackReference(ref)
		return ResourceIr{Kind: RRef, Ref: ref}, nil
	}
	ref, err := ctx.resolveRefName(name, path)
	if err != nil {
		return ResourceIr{}, err
	}
	ctx.trackReference(ref)
	return ResourceIr{Kind: RRef, Ref: ref}, nil
}

func lowerConditions(tree *parsetree.ParseTree, ctx *lowerCtx) ([]ConditionEntry, error) {
	out := make([]ConditionEntry, 0, len(tree.Conditions))
	for _, c := range tree.Conditions {
		v, err := lowerCondition(c.Expression, c.LogicalID, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, ConditionEntry{Name: c.LogicalID, Value: v})
	}
	return out, nil
}

func lowerCondition(v parsetree.Value, path string, ctx *lowerCtx) (ConditionIr, error) {
	if v.Kind != parsetree.KindIntrinsic {
		return ConditionIr{}, newLowerError(TypeMismatch, path, "condition expression must be an intrinsic")
	}
	intr := v.Intrinsic
	switch intr.Kind {
	case parsetree.ConditionRef:
		if !ctx.tree.HasCondition(intr.RefName) {
			return ConditionIr{}, newLowerError(UnresolvedReference, path, "condition references unknown condition %q", intr.RefName)
		}
		return ConditionIr{Kind: CRef, RefName: intr.RefName}, nil

	case parsetree.And, parsetree.Or:
		ops := make([]ConditionIr, 0, len(intr.Args))
		for i, a := range intr.Args {
			op, err := lowerCondition(a, indexPath(path, i), ctx)
			if err != nil {
				return ConditionIr{}, err
			}
			ops = append(ops, op)
		}
		kind := CAnd
		if intr.Kind == parsetree.Or {
			kind = COr
		}
		return ConditionIr{Kind: kind, Operands: ops}, nil

	case parsetree.Not:
		op, err := lowerCondition(intr.Args[0], indexPath(path, 0), ctx)
		if err != nil {
			return ConditionIr{}, err
		}
		return ConditionIr{Kind: CNot, Operands: []ConditionIr{op}}, nil

	case parsetree.Equals:
		l, err := lowerValue(intr.Args[0], schema.TypeReference{}, indexPath(path, 0), ctx)
		if err != nil {
			return ConditionIr{}, err
		}
		r, err := lowerValue(intr.Args[1], schema.TypeReference{}, indexPath(path, 1), ctx)
		if err != nil {
			return ConditionIr{}, err
		}
		return ConditionIr{Kind: CEquals, Left: &l, Right: &r}, nil

	case parsetree.FindInMap:
		args, err := lowerArgsN(intr.Args, path, ctx)
		if err != nil {
			return ConditionIr{}, err
		}
		return ConditionIr{Kind: CMap, MapArgs: args}, nil

	default:
		return ConditionIr{}, newLowerError(TypeMismatch, path, "%s is not valid as a condition expression", intr.Kind)
	}
}

func lowerResources(tree *parsetree.ParseTree, ctx *lowerCtx) ([]ResourceInstruction, error) {
	out := make([]ResourceInstruction, 0, len(tree.Resources))
	for _, r := range tree.Resources {
		path := "Resources." + r.LogicalID
		ctx.currentRefs = map[string]struct{}{}

		spec, hasSpec := ctx.schema.TypeNamed(r.Type)
		var props map[string]schema.TypeReference
		if hasSpec {
			props = spec.Properties
			for _, req := range spec.Required {
				if _, ok := parsetree.Object(r.Properties).Get(req); !ok {
					return nil, newLowerError(MissingRequiredProperty, path+".Properties", "%s requires property %q", r.Type, req)
				}
			}
		} else {
			ctx.warnings = append(ctx.warnings, SchemaWarning{Path: path, Message: fmt.Sprintf("unknown resource type %q", r.Type)})
		}

		properties := make([]ResourceIrField, 0, len(r.Properties))
		for _, f := range r.Properties {
			lowered, err := lowerValue(f.Value, props[f.Key], childPath(path+".Properties", f.Key), ctx)
			if err != nil {
				return nil, err
			}
			// A property whose value resolves from Ref: AWS::NoValue lowers
			// to RNull and must vanish entirely rather than emit as a null
			// literal (spec.md §4.2 step 1, scenario S6).
			if lowered.Kind == RNull {
				continue
			}
			properties = append(properties, ResourceIrField{Key: f.Key, Value: lowered})
		}

		var metadata, updatePolicy *ResourceIr
		if r.Metadata != nil {
			v, err := lowerValue(*r.Metadata, schema.TypeReference{}, path+".Metadata", ctx)
			if err != nil {
				return nil, err
			}
			metadata = &v
		}
		if r.UpdatePolicy != nil {
			v, err := lowerValue(*r.UpdatePolicy, schema.TypeReference{}, path+".UpdatePolicy", ctx)
			if err != nil {
				return nil, err
			}
			updatePolicy = &v
		}

		for _, dep := range r.DependsOn {
			if !tree.HasResource(dep) {
				return nil, newLowerError(UnresolvedReference, path+".DependsOn", "DependsOn references unknown resource %q", dep)
			}
		}

		out = append(out, ResourceInstruction{
			Name:                r.LogicalID,
			ResourceType:        r.Type,
			Properties:          properties,
			Condition:           r.Condition,
			Metadata:            metadata,
			UpdatePolicy:        updatePolicy,
			DeletionPolicy:      r.DeletionPolicy,
			UpdateReplacePolicy: r.UpdateReplacePolicy,
			Dependencies:        append([]string(nil), r.DependsOn...),
			References:          ctx.currentRefs,
		})
	}
	ctx.currentRefs = nil
	return out, nil
}

func lowerOutputs(tree *parsetree.ParseTree, ctx *lowerCtx) ([]OutputInstruction, error) {
	ctx.currentRefs = nil
	out := make([]OutputInstruction, 0, len(tree.Outputs))
	for _, o := range tree.Outputs {
		path := "Outputs." + o.LogicalID
		v, err := lowerValue(o.Value, schema.TypeReference{}, path+".Value", ctx)
		if err != nil {
			return nil, err
		}
		var export *ResourceIr
		if o.Export != nil {
			e, err := lowerValue(*o.Export, schema.TypeReference{}, path+".Export", ctx)
			if err != nil {
				return nil, err
			}
			export = &e
		}
		out = append(out, OutputInstruction{
			Name:        o.LogicalID,
			Value:       v,
			Description: o.Description,
			Export:      export,
			Condition:   o.Condition,
		})
	}
	return out, nil
}

func lowerParameters(tree *parsetree.ParseTree, ctx *lowerCtx) []ConstructorParameter {
	out := make([]ConstructorParameter, 0, len(tree.Parameters))
	for _, p := range tree.Parameters {
		cp := ConstructorParameter{
			Name:            p.LogicalID,
			ConstructorType: cfnParameterType(p.Type),
			Description:     p.Description,
			NoEcho:          p.NoEcho,
		}
		if p.Default != nil {
			if v, err := lowerValue(*p.Default, schema.TypeReference{}, "Parameters."+p.LogicalID+".Default", ctx); err == nil {
				cp.Default = &v
			}
		}
		out = append(out, cp)
	}
	return out
}

func cfnParameterType(cfnType string) schema.TypeReference {
	switch cfnType {
	case "Number":
		return schema.Prim(schema.PrimitiveNumber)
	case "List<Number>":
		return schema.List(schema.Prim(schema.PrimitiveNumber))
	case "CommaDelimitedList", "List<String>":
		return schema.List(schema.Prim(schema.PrimitiveString))
	default:
		return schema.Prim(schema.PrimitiveString)
	}
}

func lowerMappings(tree *parsetree.ParseTree, ctx *lowerCtx) []Mapping {
	ctx.currentRefs = nil
	out := make([]Mapping, 0, len(tree.Mappings))
	for _, m := range tree.Mappings {
		mapping := Mapping{Name: m.LogicalID}
		for _, top := range m.Data {
			entry := MappingTopEntry{Key: top.Key}
			for _, inner := range top.Inner {
				lowered, err := lowerValue(inner.Value, schema.TypeReference{}, "", ctx)
				if err != nil {
					continue
				}
				entry.Inner = append(entry.Inner, MappingInnerEntry{Key: inner.Key, Value: lowered})
			}
			mapping.Data = append(mapping.Data, entry)
		}
		switch m.LeafKind {
		case parsetree.LeafString:
			mapping.OutputKind, mapping.LeafPrimitive = OutputConsistent, schema.PrimitiveString
		case parsetree.LeafNumber:
			mapping.OutputKind, mapping.LeafPrimitive = OutputConsistent, schema.PrimitiveNumber
		case parsetree.LeafFloat:
			mapping.OutputKind, mapping.LeafPrimitive = OutputConsistent, schema.PrimitiveNumber
		case parsetree.LeafBool:
			mapping.OutputKind, mapping.LeafPrimitive = OutputConsistent, schema.PrimitiveBoolean
		case parsetree.LeafListString:
			mapping.OutputKind, mapping.LeafPrimitive = OutputConsistent, schema.PrimitiveString
		default:
			mapping.OutputKind = OutputComplex
		}
		out = append(out, mapping)
	}
	return out
}

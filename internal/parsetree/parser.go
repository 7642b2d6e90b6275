package parsetree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/primitives"
	"gopkg.in/yaml.v3"
)

// Parse lifts raw template bytes (JSON or YAML, CloudFormation's document
// model treats JSON as a YAML subset) into a ParseTree, normalizing
// short-form intrinsic tags and long-form single-key intrinsic objects
// along the way, per spec.md §3's "parser produces value-identical trees
// regardless of which form the author used."
func Parse(data []byte) (*ParseTree, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, newParseError(SyntaxError, "", "%v", err)
	}
	if len(root.Content) != 1 {
		return nil, newParseError(SyntaxError, "", "document is empty")
	}

	doc, err := decodeNode(root.Content[0], "")
	if err != nil {
		return nil, err
	}
	if doc.Kind != KindObject {
		return nil, newParseError(SyntaxError, "", "template root must be a mapping")
	}
	return buildParseTree(doc)
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

// decodeNode converts one YAML node into a Value, recognizing CFN
// short-form tags ("!Ref", "!Sub", ...) on scalars, mappings, and
// sequences alike.
func decodeNode(node *yaml.Node, path string) (Value, error) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if strings.HasPrefix(node.Tag, "!") && !strings.HasPrefix(node.Tag, "!!") {
		tagName := strings.TrimPrefix(node.Tag, "!")
		longKey, ok := shortFormTags[tagName]
		if !ok {
			return Value{}, newParseError(UnknownIntrinsic, path, "unknown short-form tag %q", node.Tag)
		}
		var inner Value
		var err error
		if node.Kind == yaml.ScalarNode {
			// Scalar intrinsic shorthand ("!Ref Name", "!GetAtt A.Arn",
			// "!Sub template", ...) is always a bare string; node.Decode
			// would try to resolve it through the custom tag itself, so
			// take the literal scalar text instead.
			inner = String(node.Value)
		} else {
			inner, err = decodeUntagged(node, path)
			if err != nil {
				return Value{}, err
			}
		}
		intr, err := buildIntrinsic(longFormKind[longKey], inner, path)
		if err != nil {
			return Value{}, err
		}
		return FromIntrinsic(intr), nil
	}

	return decodeUntagged(node, path)
}

// decodeUntagged decodes a node by its structural kind, ignoring any
// custom tag already consumed by the caller.
func decodeUntagged(node *yaml.Node, path string) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node, path)
	case yaml.MappingNode:
		return decodeMapping(node, path)
	case yaml.SequenceNode:
		return decodeSequence(node, path)
	default:
		return Value{}, newParseError(SyntaxError, path, "unsupported node kind")
	}
}

// decodeScalar switches on the tag yaml.v3 already resolved for this node
// rather than decoding into interface{}: that keeps "5.0" a Double and "5"
// a Number instead of collapsing both through a round-trip float check.
func decodeScalar(node *yaml.Node, path string) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Value{}, newParseError(TypeMismatch, path, "invalid boolean %q", node.Value)
		}
		return Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(node.Value, 64)
			if ferr != nil {
				return Value{}, newParseError(TypeMismatch, path, "invalid integer %q", node.Value)
			}
			return Double(primitives.Float64(f)), nil
		}
		return Number(primitives.Int64(i)), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return Value{}, newParseError(TypeMismatch, path, "invalid float %q", node.Value)
		}
		return Double(primitives.Float64(f)), nil
	default:
		// !!str, !!timestamp, !!binary, and anything else yaml resolves
		// are all opaque strings to CloudFormation outside of Properties
		// values it interprets itself.
		return String(node.Value), nil
	}
}

// detects CFN's single-key intrinsic object form ("Ref": ..., "Fn::Sub":
// ..., "Condition": ...) plus the JSON-compatible "!X" key spelling
// (spec.md §3: JSON documents cannot carry YAML tags, so intrinsics are
// spelled as an ordinary key prefixed with "!").
func intrinsicKeyKind(key string) (IntrinsicKind, bool) {
	if strings.HasPrefix(key, "!") {
		longKey, ok := shortFormTags[strings.TrimPrefix(key, "!")]
		if !ok {
			return 0, false
		}
		return longFormKind[longKey], true
	}
	kind, ok := longFormKind[key]
	return kind, ok
}

func decodeMapping(node *yaml.Node, path string) (Value, error) {
	if len(node.Content)%2 != 0 {
		return Value{}, newParseError(SyntaxError, path, "malformed mapping")
	}
	pairCount := len(node.Content) / 2

	if pairCount == 1 {
		keyNode, valNode := node.Content[0], node.Content[1]
		if kind, ok := intrinsicKeyKind(keyNode.Value); ok {
			argVal, err := decodeNode(valNode, childPath(path, keyNode.Value))
			if err != nil {
				return Value{}, err
			}
			intr, err := buildIntrinsic(kind, argVal, path)
			if err != nil {
				return Value{}, err
			}
			return FromIntrinsic(intr), nil
		}
	}

	fields := make([]ObjectField, 0, pairCount)
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		val, err := decodeNode(valNode, childPath(path, keyNode.Value))
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, ObjectField{Key: keyNode.Value, Value: val})
	}
	return Object(fields), nil
}

func decodeSequence(node *yaml.Node, path string) (Value, error) {
	items := make([]Value, 0, len(node.Content))
	for i, c := range node.Content {
		v, err := decodeNode(c, indexPath(path, i))
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Array(items), nil
}

func buildParseTree(doc Value) (*ParseTree, error) {
	tree := &ParseTree{LogicalLookup: map[string]string{}}

	for _, f := range doc.Object {
		switch f.Key {
		case "Description":
			tree.Description = f.Value.String
		case "AWSTemplateFormatVersion":
			tree.AWSTemplateFormatVersion = f.Value.String
		case "Transform":
			tree.Transform = stringList(f.Value)
		case "Parameters":
			for _, pf := range f.Value.Object {
				tree.Parameters = append(tree.Parameters, buildParameter(pf.Key, pf.Value))
			}
		case "Mappings":
			for _, mf := range f.Value.Object {
				tree.Mappings = append(tree.Mappings, buildMapping(mf.Key, mf.Value))
			}
		case "Conditions":
			for _, cf := range f.Value.Object {
				tree.Conditions = append(tree.Conditions, Condition{LogicalID: cf.Key, Expression: cf.Value})
			}
		case "Resources":
			for _, rf := range f.Value.Object {
				res := buildResource(rf.Key, rf.Value)
				tree.Resources = append(tree.Resources, res)
				tree.LogicalLookup[res.LogicalID] = res.Type
			}
		case "Outputs":
			for _, of := range f.Value.Object {
				tree.Outputs = append(tree.Outputs, buildOutput(of.Key, of.Value))
			}
		}
	}

	if len(tree.Resources) == 0 {
		return nil, newParseError(MissingSection, "Resources", "template must declare at least one resource")
	}
	return tree, nil
}

func stringList(v Value) []string {
	switch v.Kind {
	case KindString:
		return []string{v.String}
	case KindArray:
		out := make([]string, 0, len(v.Array))
		for _, el := range v.Array {
			out = append(out, el.String)
		}
		return out
	default:
		return nil
	}
}

func buildParameter(name string, v Value) Parameter {
	p := Parameter{LogicalID: name}
	for _, f := range v.Object {
		switch f.Key {
		case "Type":
			p.Type = f.Value.String
		case "Default":
			val := f.Value
			p.Default = &val
		case "AllowedValues":
			p.AllowedValues = f.Value.Array
		case "Description":
			p.Description = f.Value.String
		case "NoEcho":
			p.NoEcho = f.Value.Kind == KindBool && f.Value.Bool
		}
	}
	return p
}

func buildMapping(name string, v Value) Mapping {
	m := Mapping{LogicalID: name}
	for _, top := range v.Object {
		entry := MappingTopEntry{Key: top.Key}
		for _, inner := range top.Value.Object {
			entry.Inner = append(entry.Inner, MappingInnerEntry{Key: inner.Key, Value: inner.Value})
		}
		m.Data = append(m.Data, entry)
	}
	m.LeafKind = classifyMappingLeafKind(m)
	return m
}

func classifyMappingLeafKind(m Mapping) MappingLeafKind {
	kind := LeafUnknown
	for _, top := range m.Data {
		for _, inner := range top.Inner {
			lk := leafKindOf(inner.Value)
			switch {
			case kind == LeafUnknown:
				kind = lk
			case kind != lk:
				return LeafComplex
			}
		}
	}
	if kind == LeafUnknown {
		return LeafComplex
	}
	return kind
}

func leafKindOf(v Value) MappingLeafKind {
	switch v.Kind {
	case KindString:
		return LeafString
	case KindNumber:
		return LeafNumber
	case KindDouble:
		return LeafFloat
	case KindBool:
		return LeafBool
	case KindArray:
		for _, el := range v.Array {
			if el.Kind != KindString {
				return LeafComplex
			}
		}
		return LeafListString
	default:
		return LeafComplex
	}
}

func buildResource(name string, v Value) Resource {
	r := Resource{LogicalID: name}
	for _, f := range v.Object {
		switch f.Key {
		case "Type":
			r.Type = f.Value.String
		case "Properties":
			r.Properties = f.Value.Object
		case "Condition":
			r.Condition = f.Value.String
		case "Metadata":
			val := f.Value
			r.Metadata = &val
		case "UpdatePolicy":
			val := f.Value
			r.UpdatePolicy = &val
		case "DeletionPolicy":
			r.DeletionPolicy = f.Value.String
		case "UpdateReplacePolicy":
			r.UpdateReplacePolicy = f.Value.String
		case "DependsOn":
			r.DependsOn = stringList(f.Value)
		}
	}
	return r
}

func buildOutput(name string, v Value) Output {
	o := Output{LogicalID: name}
	for _, f := range v.Object {
		switch f.Key {
		case "Value":
			o.Value = f.Value
		case "Description":
			o.Description = f.Value.String
		case "Export":
			val := f.Value
			o.Export = &val
		case "Condition":
			o.Condition = f.Value.String
		}
	}
	return o
}

// Package ir lowers a parsetree.ParseTree into the resolved, emitter-facing
// intermediate representation described in spec.md §3/§4.2: references bound
// to their origins, conditions flattened to ConditionIr, resources
// topologically ordered, and imports synthesized.
package ir

import (
	"github.com/lex00/cdk-from-cfn-go/internal/primitives"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

// PseudoParameter enumerates the reserved AWS::* identifiers.
type PseudoParameter int

const (
	AccountId PseudoParameter = iota
	NotificationArns
	NoValue
	Partition
	Region
	StackId
	StackName
	URLSuffix
)

// pseudoParameterNames maps the CFN "AWS::X" spelling to its PseudoParameter.
var pseudoParameterNames = map[string]PseudoParameter{
	"AWS::AccountId":        AccountId,
	"AWS::NotificationARNs": NotificationArns,
	"AWS::NoValue":          NoValue,
	"AWS::Partition":        Partition,
	"AWS::Region":           Region,
	"AWS::StackId":          StackId,
	"AWS::StackName":        StackName,
	"AWS::URLSuffix":        URLSuffix,
}

// Origin discriminates what a Reference resolves to.
type Origin int

const (
	OriginParameter Origin = iota
	OriginLogicalId
	OriginGetAttribute
	OriginCondition
	OriginPseudoParameter
)

// Reference is a resolved Ref/GetAtt/Condition-name/pseudo-parameter, per
// spec.md §3's "Reference has an Origin".
type Reference struct {
	Origin Origin

	// Name is the parameter name, logical id, or condition name, depending
	// on Origin. Unused when Origin is OriginPseudoParameter.
	Name string

	// Attribute is set only for OriginGetAttribute.
	Attribute string

	// Pseudo is set only for OriginPseudoParameter.
	Pseudo PseudoParameter

	// Conditional is true when the referenced resource (LogicalId or
	// GetAttribute targets) is declared under a Condition, so the
	// reference may resolve to nothing at deploy time (spec.md §4.2 step 6).
	Conditional bool
}

// ResourceIrKind discriminates the ResourceIr tagged union.
type ResourceIrKind int

const (
	RNull ResourceIrKind = iota
	RBool
	RNumber
	RDouble
	RString
	RArray
	RObject
	RRef
	RSub
	RMap
	RJoin
	RSelect
	RSplit
	RBase64
	RCidr
	RGetAZs
	RIf
	RImportValue
)

// ResourceIrField is one ordered key/value pair of an RObject.
type ResourceIrField struct {
	Key   string
	Value ResourceIr
}

// SubPart is one alternating literal/hole segment of a lowered Fn::Sub
// template (spec.md §4.2 step 3).
type SubPart struct {
	Literal string
	IsHole  bool
	Value   *ResourceIr
}

// ResourceIr is the emitter-ready value sum type (spec.md §3's
// "ResourceIr / ConditionIr. Emitter-ready sum types"). Only the fields
// matching Kind are meaningful:
//
//	RMap          Args[0]=map name, Args[1]=top key, Args[2]=second key
//	RJoin         Args[0]=separator, Args[1]=list
//	RSelect       Args[0]=index, Args[1]=list (only reachable when the
//	              index was not a constant fold over a literal array)
//	RSplit        Args[0]=separator, Args[1]=text
//	RBase64       Args[0]=value
//	RCidr         Args[0]=block, Args[1]=count, Args[2]=cidrBits
//	RGetAZs       Args[0]=region
//	RIf           IfCondition=condition name, Args[0]=then, Args[1]=else
//	RImportValue  Args[0]=name
type ResourceIr struct {
	Kind ResourceIrKind

	Bool   bool
	Number primitives.Int64
	Double primitives.Float64
	String string

	Array []ResourceIr
	// TypeRef is the CDK property type the Schema assigns at this
	// position, carried on Array/Object so emitters can render
	// type-qualified constructors (spec.md §4.2 "Property typing").
	TypeRef *schema.TypeReference
	Object  []ResourceIrField

	Ref *Reference

	SubParts []SubPart

	IfCondition string
	Args        []ResourceIr
}

func Null() ResourceIr            { return ResourceIr{Kind: RNull} }
func Bool(b bool) ResourceIr      { return ResourceIr{Kind: RBool, Bool: b} }
func Number(n primitives.Int64) ResourceIr   { return ResourceIr{Kind: RNumber, Number: n} }
func Double(d primitives.Float64) ResourceIr { return ResourceIr{Kind: RDouble, Double: d} }
func String(s string) ResourceIr  { return ResourceIr{Kind: RString, String: s} }

// ConditionIrKind discriminates the ConditionIr tagged union.
type ConditionIrKind int

const (
	CRef ConditionIrKind = iota
	CAnd
	COr
	CNot
	CEquals
	CMap
)

// ConditionIr is the lowered form of a boolean intrinsic (spec.md §4.2
// step 4). CRef names another condition; CAnd/COr/COr take Operands;
// CNot takes exactly one; CEquals compares two plain values; CMap mirrors
// RMap for a FindInMap used directly as a condition expression.
type ConditionIr struct {
	Kind ConditionIrKind

	RefName  string
	Operands []ConditionIr

	Left, Right *ResourceIr

	MapArgs []ResourceIr
}

// MappingOutputKind is the emitter-facing leaf classification of a Mapping
// (spec.md §3's `output_type ∈ {Consistent(kind), Complex}`).
type MappingOutputKind int

const (
	OutputComplex MappingOutputKind = iota
	OutputConsistent
)

// MappingInnerEntry is one second-level key inside a Mapping's top key,
// with its value fully lowered.
type MappingInnerEntry struct {
	Key   string
	Value ResourceIr
}

// MappingTopEntry is one top-level key of a Mapping.
type MappingTopEntry struct {
	Key   string
	Inner []MappingInnerEntry
}

// Mapping is a lowered entry of the template's Mappings section.
type Mapping struct {
	Name       string
	Data       []MappingTopEntry
	OutputKind MappingOutputKind
	// LeafPrimitive is meaningful only when OutputKind is OutputConsistent.
	LeafPrimitive schema.Primitive
}

// ConstructorParameter is one entry of the synthesized stack constructor's
// "props" input (spec.md §3).
type ConstructorParameter struct {
	Name            string
	ConstructorType schema.TypeReference
	Description     string
	Default         *ResourceIr
	NoEcho          bool
}

// ConditionEntry is one lowered entry of the template's Conditions section.
type ConditionEntry struct {
	Name  string
	Value ConditionIr
}

// ResourceInstruction is one topologically-ordered, lowered resource
// (spec.md §3).
type ResourceInstruction struct {
	Name           string
	ResourceType   string
	Properties     []ResourceIrField
	Condition      string
	Metadata            *ResourceIr
	UpdatePolicy        *ResourceIr
	DeletionPolicy      string
	UpdateReplacePolicy string
	Dependencies        []string
	// References is the set of logical ids this resource depends on,
	// transitively through intrinsics (spec.md §3).
	References map[string]struct{}
}

// Conditional reports whether this resource is declared under a Condition.
func (r *ResourceInstruction) Conditional() bool { return r.Condition != "" }

// OutputInstruction is one lowered entry of the template's Outputs section.
type OutputInstruction struct {
	Name        string
	Value       ResourceIr
	Description string
	Export      *ResourceIr
	Condition   string
}

// Import is one synthesized, target-agnostic import, shaped after
// original_source/src/synthesizer/golang/mod.rs's ImportInstruction: Path[0]
// is the ecosystem root (e.g. "aws-cdk-lib"); later segments are module
// path components; Name is the symbol each emitter's own AsTarget-style
// translation binds locally.
type Import struct {
	Path []string
	Name string
}

// IR is the fully resolved, emitter-facing program (spec.md §3).
type IR struct {
	Imports           []Import
	ConstructorInputs []ConstructorParameter
	Mappings          []Mapping
	Conditions        []ConditionEntry
	Resources         []ResourceInstruction
	Outputs           []OutputInstruction
	Description       string
	// Warnings is the side-channel of non-fatal schema diagnostics
	// accumulated during lowering (e.g. an unknown resource or property
	// type) — spec.md §7: returned alongside a successful Lower, never
	// merged into the error return.
	Warnings []SchemaWarning
}

// String returns the CFN AWS::* spelling for p, for error
// messages and diagnostics.
func (p PseudoParameter) String() string {
	switch p {
	case AccountId:
		return "AWS::AccountId"
	case NotificationArns:
		return "AWS::NotificationARNs"
	case NoValue:
		return "AWS::NoValue"
	case Partition:
		return "AWS::Partition"
	case Region:
		return "AWS::Region"
	case StackId:
		return "AWS::StackId"
	case StackName:
		return "AWS::StackName"
	case URLSuffix:
		return "AWS::URLSuffix"
	default:
		return "AWS::Unknown"
	}
}

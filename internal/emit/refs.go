// Package emit holds the logic shared by every back end in
// internal/emit/{golang,typescript,python,java,csharp} — the one piece of
// emission policy spec.md states as target-agnostic rather than per-target
// idiom: the per-resource local-binding decision (spec.md §4.5 point 4).
package emit

import "github.com/lex00/cdk-from-cfn-go/internal/ir"

// IsReferencedElsewhere decides whether a resource needs a local binding:
// bind only if some OTHER resource's References set names it, or some
// output's Value (not Export — original_source's find_references deliberately
// does not walk Export) references it. Every emitter calls this before
// deciding whether to name its constructed resource or leave it anonymous.
func IsReferencedElsewhere(program *ir.IR, name string) bool {
	for _, other := range program.Resources {
		if other.Name == name {
			continue
		}
		if _, ok := other.References[name]; ok {
			return true
		}
	}
	for _, out := range program.Outputs {
		if ReferencesResource(out.Value, name) {
			return true
		}
	}
	return false
}

// ReferencesResource walks a ResourceIr looking for a Ref/GetAtt to name.
func ReferencesResource(v ir.ResourceIr, name string) bool {
	switch v.Kind {
	case ir.RRef:
		return v.Ref != nil && (v.Ref.Origin == ir.OriginLogicalId || v.Ref.Origin == ir.OriginGetAttribute) && v.Ref.Name == name
	case ir.RSub:
		for _, part := range v.SubParts {
			if part.IsHole && ReferencesResource(*part.Value, name) {
				return true
			}
		}
		return false
	case ir.RArray:
		for _, item := range v.Array {
			if ReferencesResource(item, name) {
				return true
			}
		}
		return false
	case ir.RObject:
		for _, f := range v.Object {
			if ReferencesResource(f.Value, name) {
				return true
			}
		}
		return false
	case ir.RIf, ir.RCidr, ir.RJoin, ir.RMap, ir.RSelect, ir.RSplit, ir.RBase64, ir.RGetAZs, ir.RImportValue:
		for _, arg := range v.Args {
			if ReferencesResource(arg, name) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

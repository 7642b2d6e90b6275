package ir

import (
	"sort"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

// synthesizeImports builds the deduplicated, ordered import list (spec.md
// §4.2 step 6). Path segments are kept in the TypeScript-flavored canonical
// form ("aws-cdk-lib/aws-s3") that original_source/src/synthesizer/golang/
// mod.rs's ImportInstruction.to_golang() rewrites per target; each emitter
// does its own translation at synthesis time.
func synthesizeImports(resources []ResourceInstruction, sch *schema.Schema) []Import {
	seen := map[string]bool{}
	var out []Import

	add := func(pkg, name string) {
		key := pkg + "#" + name
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Import{Path: strings.Split(pkg, "/"), Name: name})
	}

	add("aws-cdk-lib", "Stack")
	add("constructs", "Construct")

	for _, r := range resources {
		spec, ok := sch.TypeNamed(r.ResourceType)
		if !ok {
			continue
		}
		add(spec.Name.TypeScript.Package, spec.Name.TypeScript.Name)
	}

	sort.SliceStable(out[2:], func(i, j int) bool {
		a, b := out[2:][i], out[2:][j]
		pa, pb := strings.Join(a.Path, "/"), strings.Join(b.Path, "/")
		if pa != pb {
			return pa < pb
		}
		return a.Name < b.Name
	})
	return out
}

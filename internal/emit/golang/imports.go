package golang

import (
	"sort"
	"strings"

	"github.com/lex00/cdk-from-cfn-go/internal/ir"
)

// awsCdkGoModule is the root of the real aws-cdk-go module; it replaces
// the IR's canonical "aws-cdk-lib" path segment the same way
// original_source/src/synthesizer/golang/mod.rs's ImportInstruction.
// to_golang() does.
const awsCdkGoModule = "github.com/aws/aws-cdk-go/awscdk/v2"

// toGolangPath rewrites a target-agnostic ir.Import's canonical path into
// the real aws-cdk-go module path, stripping non-alphanumeric characters
// from every segment after the root exactly as to_golang() does (so
// "aws-s3" becomes "awss3", matching both the real SDK's package names
// and this schema's PerTarget.Golang.Package values).
func toGolangPath(imp ir.Import) string {
	if len(imp.Path) == 0 {
		return ""
	}
	parts := make([]string, 0, len(imp.Path))
	if imp.Path[0] == "aws-cdk-lib" {
		parts = append(parts, awsCdkGoModule)
	} else {
		parts = append(parts, imp.Path[0])
	}
	for _, seg := range imp.Path[1:] {
		parts = append(parts, alnumOnly(seg))
	}
	return strings.Join(parts, "/")
}

func alnumOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collectGoImportPaths reduces the IR's per-symbol import list down to the
// set of distinct Go package paths actually needed. Go binds one package
// identifier per import regardless of how many exported symbols from it
// are used, so — unlike the per-symbol import lines a TypeScript or
// Python back end would emit — the Go import block only ever needs one
// line per package.
func collectGoImportPaths(program *ir.IR) []string {
	seen := map[string]bool{}
	var out []string
	for _, imp := range program.Imports {
		path := toGolangPath(imp)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Command cfn2cdk transpiles a CloudFormation template into CDK source.
//
// Usage:
//
//	cfn2cdk build template.yaml --language typescript --stack-name MyStack
//	cat template.json | cfn2cdk build - --language python > stack.py
//	cfn2cdk version
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=v1.0.0".
var version = ""

// getVersion resolves the running binary's version: an ldflags override
// first, then the module version recorded by `go install pkg@version`,
// falling back to "dev" for a local build.
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "cfn2cdk",
		Short: "Transpile CloudFormation templates into CDK source",
		Long: `cfn2cdk reads a CloudFormation template (JSON or YAML) and emits an
idiomatic CDK construct in the target language.

    cfn2cdk build template.yaml --language typescript --stack-name MyStack`,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cfn2cdk %s\n", getVersion())
		},
	}
}

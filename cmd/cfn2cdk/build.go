package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cfnfromcdk "github.com/lex00/cdk-from-cfn-go"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

func newBuildCmd() *cobra.Command {
	var (
		language   string
		stackName  string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "build [template]",
		Short: "Transpile a CloudFormation template into CDK source",
		Long: `Build parses a CloudFormation template and emits a CDK construct in the
target language.

Examples:
    cfn2cdk build template.yaml --language typescript --stack-name MyStack
    cat template.json | cfn2cdk build - --language go -o stack.go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], language, stackName, outputFile)
		},
	}

	cmd.Flags().StringVar(&language, "language", "typescript", "Target language: typescript, python, java, go, csharp")
	cmd.Flags().StringVar(&stackName, "stack-name", "GeneratedStack", "Generated construct class name")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runBuild(path, language, stackName, outputFile string) error {
	target, err := cfnfromcdk.ParseTarget(language)
	if err != nil {
		return err
	}

	document, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := cfnfromcdk.Parse(document)
	if err != nil {
		return err
	}

	sch := schema.Builtin()
	program, err := cfnfromcdk.Lower(tree, sch)
	if err != nil {
		return err
	}
	for _, w := range program.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Path, w.Message)
	}

	out, closeOut, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	return cfnfromcdk.Synthesize(program, sch, target, stackName, out)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { f.Close() }, nil
}

package csharp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lex00/cdk-from-cfn-go/internal/ir"
	"github.com/lex00/cdk-from-cfn-go/internal/parsetree"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

func mustSynthesize(t *testing.T, doc, stackName string) string {
	t.Helper()
	tree, err := parsetree.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sch := schema.Builtin()
	program, err := ir.Lower(tree, sch)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	var buf bytes.Buffer
	if err := Synthesize(program, sch, stackName, &buf); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	return buf.String()
}

func TestSynthesizeTrivialRef(t *testing.T) {
	out := mustSynthesize(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: AWS::StackName
`, "X")

	for _, want := range []string{
		"using Amazon.CDK.AWS.S3;",
		"public class XProps : StackProps",
		"public class X : Stack",
		"public X(Construct scope, string id, XProps props) : base(scope, id, props)",
		`new CfnBucket(this, "R", new CfnBucketProps {`,
		"BucketName = Aws.STACK_NAME,",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSynthesizeUnusedResourceHasNoLocalBinding(t *testing.T) {
	out := mustSynthesize(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
`, "X")
	if strings.Contains(out, "var r = new CfnBucket(") {
		t.Fatalf("unreferenced resource should not get a local binding:\n%s", out)
	}
}

func TestSynthesizeGetAttBindsLocal(t *testing.T) {
	out := mustSynthesize(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
  B:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::GetAtt: [A, Arn]
`, "X")
	if !strings.Contains(out, `var a = new CfnBucket(this, "A"`) {
		t.Fatalf("expected A to get a local binding since B references it:\n%s", out)
	}
	if !strings.Contains(out, "BucketName = a.AttrArn,") {
		t.Fatalf("expected B's property to read a.AttrArn:\n%s", out)
	}
}

func TestSynthesizeNoValueOmitsProperty(t *testing.T) {
	out := mustSynthesize(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: AWS::NoValue
      VersioningConfiguration:
        Status: Enabled
`, "X")
	if strings.Contains(out, "BucketName =") {
		t.Fatalf("property set from AWS::NoValue should be absent, got:\n%s", out)
	}
	if !strings.Contains(out, "VersioningConfiguration =") {
		t.Fatalf("expected the surviving property to still be emitted:\n%s", out)
	}
}

func TestSynthesizeIfUsesNativeTernary(t *testing.T) {
	out := mustSynthesize(t, `
Parameters:
  Env:
    Type: String
Conditions:
  IsProd:
    Fn::Equals: [!Ref Env, prod]
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::If: [IsProd, prod-bucket, dev-bucket]
`, "X")
	if !strings.Contains(out, "isProd ? ") {
		t.Fatalf("expected a native ternary, got:\n%s", out)
	}
}

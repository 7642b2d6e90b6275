package python

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
		"import aws_cdk as cdk",
		"from aws_cdk import aws_s3 as s3",
		"class X(cdk.Stack):",
		"def __init__(self, scope: Construct, id: str,",
		`s3.CfnBucket(self, "R",`,
		"bucket_name=cdk.Aws.STACK_NAME,",
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
	if strings.Contains(out, "r = s3.CfnBucket(") {
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
	if !strings.Contains(out, "a = s3.CfnBucket(") {
		t.Fatalf("expected A to get a local binding since B references it:\n%s", out)
	}
	if !strings.Contains(out, "bucket_name=a.attr_arn,") {
		t.Fatalf("expected B's property to read a.attr_arn:\n%s", out)
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
	if strings.Contains(out, "bucket_name") {
		t.Fatalf("property set from AWS::NoValue should be absent, got:\n%s", out)
	}
	if !strings.Contains(out, "versioning_configuration") {
		t.Fatalf("expected the surviving property to still be emitted:\n%s", out)
	}
}

func TestSynthesizeIfUsesConditionalExpression(t *testing.T) {
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
	if !strings.Contains(out, " if is_prod else ") {
		t.Fatalf("expected a Python conditional expression, got:\n%s", out)
	}
}

package java

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
		"import software.amazon.awscdk.services.s3.CfnBucket;",
		"class XProps {",
		"public class X extends Stack {",
		"public X(Construct scope, String id, XProps props) {",
		`CfnBucket.Builder.create(this, "R")`,
		".bucketName(Aws.STACK_NAME)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
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
	if !strings.Contains(out, "CfnBucket a = CfnBucket.Builder.create(this, \"A\")") {
		t.Fatalf("expected A to get a local binding since B references it:\n%s", out)
	}
	if !strings.Contains(out, ".bucketName(a.getAttrArn())") {
		t.Fatalf("expected B's property to call a.getAttrArn():\n%s", out)
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
	if strings.Contains(out, ".bucketName(") {
		t.Fatalf("property set from AWS::NoValue should be absent, got:\n%s", out)
	}
	if !strings.Contains(out, ".versioningConfiguration(") {
		t.Fatalf("expected the surviving property to still be emitted:\n%s", out)
	}
}

package ir

import (
	"testing"

	"github.com/lex00/cdk-from-cfn-go/internal/parsetree"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

func mustLower(t *testing.T, doc string) *IR {
	t.Helper()
	tree, err := parsetree.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, err := Lower(tree, schema.Builtin())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	return result
}

func TestLowerSimpleRef(t *testing.T) {
	result := mustLower(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: AWS::StackName
`)
	if len(result.Resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(result.Resources))
	}
	v := result.Resources[0].Properties[0].Value
	if v.Kind != RRef || v.Ref.Origin != OriginPseudoParameter || v.Ref.Pseudo != StackName {
		t.Fatalf("unexpected lowered value: %+v", v)
	}
}

func TestLowerNoValueOmitsProperty(t *testing.T) {
	result := mustLower(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: AWS::NoValue
      VersioningConfiguration:
        Status: Enabled
`)
	props := result.Resources[0].Properties
	if len(props) != 1 {
		t.Fatalf("expected NoValue property to be omitted, got %+v", props)
	}
	if props[0].Key != "VersioningConfiguration" {
		t.Fatalf("expected the surviving property to be VersioningConfiguration, got %+v", props[0])
	}
}

func TestLowerGetAttOrdersDependencyFirst(t *testing.T) {
	result := mustLower(t, `
Resources:
  B:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::GetAtt: [A, Arn]
  A:
    Type: AWS::S3::Bucket
`)
	if len(result.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(result.Resources))
	}
	if result.Resources[0].Name != "A" || result.Resources[1].Name != "B" {
		t.Fatalf("expected A before B, got order %q, %q", result.Resources[0].Name, result.Resources[1].Name)
	}
	if _, ok := result.Resources[1].References["A"]; !ok {
		t.Fatal("B should reference A")
	}
}

func TestLowerCycleIsRejected(t *testing.T) {
	tree, err := parsetree.Parse([]byte(`
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: B
  B:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: A
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = Lower(tree, schema.Builtin())
	le, ok := err.(*LowerError)
	if !ok || le.Kind != CyclicDependency {
		t.Fatalf("expected CyclicDependency, got %v", err)
	}
}

func TestLowerSubSplitsLiteralsAndHoles(t *testing.T) {
	result := mustLower(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::Sub: "bobs-${AWS::Region}"
`)
	v := result.Resources[0].Properties[0].Value
	if v.Kind != RSub {
		t.Fatalf("expected RSub, got %+v", v)
	}
	if len(v.SubParts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %+v", len(v.SubParts), v.SubParts)
	}
	if v.SubParts[0].IsHole || v.SubParts[0].Literal != "bobs-" {
		t.Fatalf("unexpected first part: %+v", v.SubParts[0])
	}
	if !v.SubParts[1].IsHole || v.SubParts[1].Value.Ref.Pseudo != Region {
		t.Fatalf("unexpected second part: %+v", v.SubParts[1])
	}
}

func TestLowerSelectConstantFolding(t *testing.T) {
	result := mustLower(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::Select:
          - 1
          - ["a", "b", "c"]
`)
	v := result.Resources[0].Properties[0].Value
	if v.Kind != RString || v.String != "b" {
		t.Fatalf("expected folded string 'b', got %+v", v)
	}
}

func TestLowerUnresolvedReferenceFails(t *testing.T) {
	tree, err := parsetree.Parse([]byte(`
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: DoesNotExist
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = Lower(tree, schema.Builtin())
	le, ok := err.(*LowerError)
	if !ok || le.Kind != UnresolvedReference {
		t.Fatalf("expected UnresolvedReference, got %v", err)
	}
}

func TestLowerConditionAndOrNot(t *testing.T) {
	result := mustLower(t, `
Parameters:
  Env:
    Type: String
Conditions:
  IsProd:
    Fn::And:
      - !Equals [!Ref Env, prod]
      - !Not [!Equals [!Ref Env, dev]]
Resources:
  R:
    Type: AWS::S3::Bucket
    Condition: IsProd
`)
	if len(result.Conditions) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(result.Conditions))
	}
	cond := result.Conditions[0].Value
	if cond.Kind != CAnd || len(cond.Operands) != 2 {
		t.Fatalf("unexpected condition shape: %+v", cond)
	}
	if cond.Operands[1].Kind != CNot {
		t.Fatalf("expected second operand to be Not, got %+v", cond.Operands[1])
	}
	if result.Resources[0].Condition != "IsProd" {
		t.Fatalf("expected resource condition IsProd, got %q", result.Resources[0].Condition)
	}
}

func TestLowerImportsIncludeBaseAndResourceType(t *testing.T) {
	result := mustLower(t, `
Resources:
  R:
    Type: AWS::S3::Bucket
`)
	found := false
	for _, imp := range result.Imports {
		if imp.Name == "CfnBucket" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CfnBucket import, got %+v", result.Imports)
	}
	if result.Imports[0].Name != "Stack" {
		t.Fatalf("expected Stack import first, got %+v", result.Imports[0])
	}
}

func TestLowerFindInMap(t *testing.T) {
	result := mustLower(t, `
Mappings:
  RegionMap:
    us-east-1:
      AMI: ami-1
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::FindInMap: [RegionMap, us-east-1, AMI]
`)
	v := result.Resources[0].Properties[0].Value
	if v.Kind != RMap || len(v.Args) != 3 {
		t.Fatalf("expected RMap with 3 args, got %+v", v)
	}
	if len(result.Mappings) != 1 || result.Mappings[0].OutputKind != OutputConsistent {
		t.Fatalf("unexpected mapping: %+v", result.Mappings)
	}
}

package parsetree

import "testing"

func propertyOf(fields []ObjectField, key string) (Value, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

func mustParse(t *testing.T, doc string) *ParseTree {
	t.Helper()
	tree, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tree
}

func TestParseMinimalTemplate(t *testing.T) {
	tree := mustParse(t, `
Resources:
  MyBucket:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: my-bucket
`)
	if len(tree.Resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(tree.Resources))
	}
	r := tree.Resources[0]
	if r.LogicalID != "MyBucket" || r.Type != "AWS::S3::Bucket" {
		t.Fatalf("unexpected resource: %+v", r)
	}
	name, ok := propertyOf(r.Properties, "BucketName")
	if !ok || name.String != "my-bucket" {
		t.Fatalf("unexpected BucketName property: %+v ok=%v", name, ok)
	}
	if tree.LogicalLookup["MyBucket"] != "AWS::S3::Bucket" {
		t.Fatal("LogicalLookup not populated")
	}
}

func TestMissingResourcesIsError(t *testing.T) {
	_, err := Parse([]byte(`Description: nothing here`))
	if err == nil {
		t.Fatal("expected MissingSection error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != MissingSection {
		t.Fatalf("expected MissingSection, got %v", err)
	}
}

func TestShortFormRefEquivalentToLongForm(t *testing.T) {
	short := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: !Ref Name
Parameters:
  Name:
    Type: String
`)
	long := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: Name
Parameters:
  Name:
    Type: String
`)
	shortVal, _ := propertyOf(short.Resources[0].Properties, "BucketName")
	longVal, _ := propertyOf(long.Resources[0].Properties, "BucketName")
	assertIntrinsicEqual(t, shortVal, longVal)
}

func TestJSONBangKeyEquivalentToLongForm(t *testing.T) {
	jsonForm := mustParse(t, `{
  "Resources": {
    "A": {
      "Type": "AWS::S3::Bucket",
      "Properties": {
        "BucketName": {"!Ref": "Name"}
      }
    }
  }
}`)
	longForm := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: Name
`)
	jsonVal, _ := propertyOf(jsonForm.Resources[0].Properties, "BucketName")
	longVal, _ := propertyOf(longForm.Resources[0].Properties, "BucketName")
	assertIntrinsicEqual(t, jsonVal, longVal)
}

func assertIntrinsicEqual(t *testing.T, a, b Value) {
	t.Helper()
	if a.Kind != KindIntrinsic || b.Kind != KindIntrinsic {
		t.Fatalf("expected both values to be intrinsics, got %v and %v", a.Kind, b.Kind)
	}
	if a.Intrinsic.Kind != b.Intrinsic.Kind || a.Intrinsic.RefName != b.Intrinsic.RefName {
		t.Fatalf("intrinsics differ: %+v vs %+v", a.Intrinsic, b.Intrinsic)
	}
}

func TestGetAttDottedStringAndListAreEquivalent(t *testing.T) {
	dotted := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
  B:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: !GetAtt A.Arn
`)
	list := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
  B:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::GetAtt: [A, Arn]
`)
	dv, _ := propertyOf(dotted.Resources[1].Properties, "BucketName")
	lv, _ := propertyOf(list.Resources[1].Properties, "BucketName")
	if dv.Intrinsic.GetAttLogical != lv.Intrinsic.GetAttLogical || dv.Intrinsic.GetAttAttribute != lv.Intrinsic.GetAttAttribute {
		t.Fatalf("GetAtt forms diverge: %+v vs %+v", dv.Intrinsic, lv.Intrinsic)
	}
	if dv.Intrinsic.GetAttLogical != "A" || dv.Intrinsic.GetAttAttribute != "Arn" {
		t.Fatalf("unexpected GetAtt fields: %+v", dv.Intrinsic)
	}
}

func TestBadGetAttArity(t *testing.T) {
	_, err := Parse([]byte(`
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Fn::GetAtt: [A, B, C]
`))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != BadGetAttArity {
		t.Fatalf("expected BadGetAttArity, got %v", err)
	}
}

func TestSubArrayFormWithReplacements(t *testing.T) {
	tree := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: !Sub
        - "${Name}-suffix"
        - Name: literal
`)
	v, _ := propertyOf(tree.Resources[0].Properties, "BucketName")
	if v.Kind != KindIntrinsic || v.Intrinsic.Kind != Sub {
		t.Fatalf("expected Sub intrinsic, got %+v", v)
	}
	if v.Intrinsic.SubTemplate != "${Name}-suffix" {
		t.Fatalf("unexpected template: %q", v.Intrinsic.SubTemplate)
	}
	if len(v.Intrinsic.SubReplacements) != 1 || v.Intrinsic.SubReplacements[0].Key != "Name" {
		t.Fatalf("unexpected replacements: %+v", v.Intrinsic.SubReplacements)
	}
}

func TestMappingLeafKindClassification(t *testing.T) {
	tree := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
Mappings:
  RegionMap:
    us-east-1:
      AMI: ami-1
    us-west-2:
      AMI: ami-2
`)
	if len(tree.Mappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(tree.Mappings))
	}
	if tree.Mappings[0].LeafKind != LeafString {
		t.Fatalf("expected LeafString, got %v", tree.Mappings[0].LeafKind)
	}
}

func TestMappingWithMixedLeafKindsIsComplex(t *testing.T) {
	tree := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
Mappings:
  Mixed:
    Key1:
      A: "text"
      B: 5
`)
	if tree.Mappings[0].LeafKind != LeafComplex {
		t.Fatalf("expected LeafComplex, got %v", tree.Mappings[0].LeafKind)
	}
}

func TestConditionWithAndOrNot(t *testing.T) {
	tree := mustParse(t, `
Conditions:
  IsProd:
    Fn::And:
      - !Equals [!Ref Env, prod]
      - !Not [!Equals [!Ref Region, us-west-2]]
Resources:
  A:
    Type: AWS::S3::Bucket
    Condition: IsProd
`)
	if len(tree.Conditions) != 1 || tree.Conditions[0].LogicalID != "IsProd" {
		t.Fatalf("unexpected conditions: %+v", tree.Conditions)
	}
	expr := tree.Conditions[0].Expression
	if expr.Kind != KindIntrinsic || expr.Intrinsic.Kind != And {
		t.Fatalf("expected top-level And, got %+v", expr)
	}
	if len(expr.Intrinsic.Args) != 2 {
		t.Fatalf("expected 2 And operands, got %d", len(expr.Intrinsic.Args))
	}
	if !tree.HasCondition("IsProd") {
		t.Fatal("HasCondition should report true for IsProd")
	}
	if tree.Resources[0].Condition != "IsProd" {
		t.Fatal("resource should carry its condition")
	}
}

func TestOutputsWithExportAndCondition(t *testing.T) {
	tree := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
Outputs:
  BucketArn:
    Value: !GetAtt A.Arn
    Export:
      Name: my-export
    Condition: AlwaysTrue
`)
	if len(tree.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(tree.Outputs))
	}
	o := tree.Outputs[0]
	if o.Condition != "AlwaysTrue" {
		t.Fatalf("unexpected condition: %q", o.Condition)
	}
	if o.Export == nil {
		t.Fatal("expected Export to be set")
	}
	name, ok := o.Export.Get("Name")
	if !ok || name.String != "my-export" {
		t.Fatalf("unexpected export name: %+v", name)
	}
}

func TestUnknownShortTagIsError(t *testing.T) {
	_, err := Parse([]byte(`
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: !NotARealIntrinsic foo
`))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnknownIntrinsic {
		t.Fatalf("expected UnknownIntrinsic, got %v", err)
	}
}

func TestDependsOnSingleAndList(t *testing.T) {
	tree := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
  B:
    Type: AWS::S3::Bucket
    DependsOn: A
  C:
    Type: AWS::S3::Bucket
    DependsOn: [A, B]
`)
	if len(tree.Resources[1].DependsOn) != 1 || tree.Resources[1].DependsOn[0] != "A" {
		t.Fatalf("unexpected single DependsOn: %+v", tree.Resources[1].DependsOn)
	}
	if len(tree.Resources[2].DependsOn) != 2 {
		t.Fatalf("unexpected list DependsOn: %+v", tree.Resources[2].DependsOn)
	}
}

func TestNumberAndDoubleDistinguished(t *testing.T) {
	tree := mustParse(t, `
Resources:
  A:
    Type: AWS::S3::Bucket
    Properties:
      IntProp: 5
      FloatProp: 5.5
`)
	intVal, _ := propertyOf(tree.Resources[0].Properties, "IntProp")
	floatVal, _ := propertyOf(tree.Resources[0].Properties, "FloatProp")
	if intVal.Kind != KindNumber {
		t.Fatalf("expected KindNumber, got %v", intVal.Kind)
	}
	if floatVal.Kind != KindDouble {
		t.Fatalf("expected KindDouble, got %v", floatVal.Kind)
	}
}

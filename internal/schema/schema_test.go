package schema

import "testing"

func TestBuiltinTypeNamed(t *testing.T) {
	s := Builtin()
	spec, ok := s.TypeNamed("AWS::S3::Bucket")
	if !ok {
		t.Fatal("expected AWS::S3::Bucket to be present")
	}
	if spec.Name.Golang.Package != "awss3" || spec.Name.Golang.Name != "CfnBucket" {
		t.Errorf("unexpected golang name: %+v", spec.Name.Golang)
	}
	if spec.Name.TypeScript.Package != "aws-cdk-lib/aws-s3" {
		t.Errorf("unexpected typescript package: %+v", spec.Name.TypeScript)
	}
}

func TestUnknownTypeDegradesGracefully(t *testing.T) {
	s := Builtin()
	_, ok := s.TypeNamed("AWS::Does::NotExist")
	if ok {
		t.Fatal("expected unknown type to report not-found")
	}
}

func TestIsPrimitiveOnly(t *testing.T) {
	if !IsPrimitiveOnly("Tag") || !IsPrimitiveOnly("aws-cdk-lib.CfnTag") {
		t.Error("Tag and CfnTag should be primitive-only")
	}
	if IsPrimitiveOnly("AWS::S3::Bucket") {
		t.Error("a real resource type should not be primitive-only")
	}
}

func TestTrimmedSchemaInjection(t *testing.T) {
	s := New(map[string]TypeSpec{
		"AWS::Test::Thing": {CfnName: "AWS::Test::Thing"},
	})
	if _, ok := s.TypeNamed("AWS::S3::Bucket"); ok {
		t.Error("trimmed schema should not see builtin types")
	}
	if _, ok := s.TypeNamed("AWS::Test::Thing"); !ok {
		t.Error("trimmed schema should see its own injected type")
	}
}

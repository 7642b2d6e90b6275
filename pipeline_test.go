package cfnfromcdk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

const trivialRefDoc = `
Resources:
  R:
    Type: AWS::S3::Bucket
    Properties:
      BucketName:
        Ref: AWS::StackName
`

func TestParseLowerSynthesizeAllTargets(t *testing.T) {
	sch := schema.Builtin()

	cases := []struct {
		target Target
		want   string
	}{
		{TypeScript, "new s3.CfnBucket(this, \"R\""},
		{Python, "s3.CfnBucket(self, \"R\","},
		{Java, "CfnBucket.Builder.create(this, \"R\")"},
		{Go, "awss3.NewCfnBucket("},
		{CSharp, "new CfnBucket(this, \"R\""},
	}

	for _, c := range cases {
		tree, err := Parse([]byte(trivialRefDoc))
		require.NoError(t, err)

		program, err := Lower(tree, sch)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = Synthesize(program, sch, c.target, "X", &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), c.want, "target %s", c.target)
	}
}

func TestParseTarget(t *testing.T) {
	for lang, want := range map[string]Target{
		"typescript": TypeScript,
		"python":     Python,
		"java":       Java,
		"go":         Go,
		"csharp":     CSharp,
	} {
		got, err := ParseTarget(lang)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTarget("rust")
	assert.Error(t, err)
}

func TestSynthesizeWrapsWriterFailureAsEmitError(t *testing.T) {
	sch := schema.Builtin()
	tree, err := Parse([]byte(trivialRefDoc))
	require.NoError(t, err)
	program, err := Lower(tree, sch)
	require.NoError(t, err)

	err = Synthesize(program, sch, TypeScript, "X", failingWriter{})
	require.Error(t, err)
	var emitErr *EmitError
	require.ErrorAs(t, err, &emitErr)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestSchemaErrorMessage(t *testing.T) {
	e := &SchemaError{Resource: "AWS::Foo::Bar", Message: "not in schema"}
	assert.Equal(t, "unknown resource AWS::Foo::Bar: not in schema", e.Error())

	e2 := &SchemaError{Resource: "AWS::Foo::Bar", Property: "Baz", Message: "not in schema"}
	assert.Equal(t, "unknown property Baz on AWS::Foo::Bar: not in schema", e2.Error())
}

package schema

// builtinTypes is the bundled schema artifact (spec.md §6 "Schema
// artifact... readable at startup; no network I/O"). It is intentionally a
// representative slice of the full CloudFormation resource spec — enough
// service coverage (S3, Lambda, IAM, EC2, DynamoDB, SNS, SQS) to exercise
// every code path in internal/ir and internal/emit, not an exhaustive
// mirror of every AWS resource type. Unknown types produce a lowering
// warning and are emitted under a placeholder name, without a TODO
// comment (see TypeNamed).
var builtinTypes = map[string]TypeSpec{
	"AWS::S3::Bucket": {
		CfnName: "AWS::S3::Bucket",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-s3", Name: "CfnBucket"},
			Python:     TargetName{Package: "aws_cdk.aws_s3", Name: "CfnBucket"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.s3", Name: "CfnBucket"},
			Golang:     TargetName{Package: "awss3", Name: "CfnBucket"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.S3", Name: "CfnBucket"},
		},
		Properties: map[string]TypeReference{
			"BucketName":           Prim(PrimitiveString),
			"AccessControl":        Prim(PrimitiveString),
			"CorsConfiguration":    Named("AWS::S3::Bucket.CorsConfiguration"),
			"VersioningConfiguration": Named("AWS::S3::Bucket.VersioningConfiguration"),
			"Tags":                 List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::S3::Bucket.CorsConfiguration": {
		CfnName: "AWS::S3::Bucket.CorsConfiguration",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-s3", Name: "CfnBucket.CorsConfigurationProperty"},
			Python:     TargetName{Package: "aws_cdk.aws_s3", Name: "CfnBucket.CorsConfigurationProperty"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.s3.CfnBucket", Name: "CorsConfigurationProperty"},
			Golang:     TargetName{Package: "awss3", Name: "CfnBucket_CorsConfigurationProperty"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.S3.CfnBucket", Name: "CorsConfigurationProperty"},
		},
		Properties: map[string]TypeReference{
			"CorsRules": List(Named("AWS::S3::Bucket.CorsRule")),
		},
	},
	"AWS::S3::Bucket.CorsRule": {
		CfnName: "AWS::S3::Bucket.CorsRule",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-s3", Name: "CfnBucket.CorsRuleProperty"},
			Python:     TargetName{Package: "aws_cdk.aws_s3", Name: "CfnBucket.CorsRuleProperty"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.s3.CfnBucket", Name: "CorsRuleProperty"},
			Golang:     TargetName{Package: "awss3", Name: "CfnBucket_CorsRuleProperty"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.S3.CfnBucket", Name: "CorsRuleProperty"},
		},
		Properties: map[string]TypeReference{
			"AllowedMethods": List(Prim(PrimitiveString)),
			"AllowedOrigins": List(Prim(PrimitiveString)),
			"AllowedHeaders": List(Prim(PrimitiveString)),
			"MaxAge":         Prim(PrimitiveNumber),
		},
	},
	"AWS::S3::Bucket.VersioningConfiguration": {
		CfnName: "AWS::S3::Bucket.VersioningConfiguration",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-s3", Name: "CfnBucket.VersioningConfigurationProperty"},
			Python:     TargetName{Package: "aws_cdk.aws_s3", Name: "CfnBucket.VersioningConfigurationProperty"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.s3.CfnBucket", Name: "VersioningConfigurationProperty"},
			Golang:     TargetName{Package: "awss3", Name: "CfnBucket_VersioningConfigurationProperty"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.S3.CfnBucket", Name: "VersioningConfigurationProperty"},
		},
		Properties: map[string]TypeReference{
			"Status": Prim(PrimitiveString),
		},
	},
	"AWS::Lambda::Function": {
		CfnName: "AWS::Lambda::Function",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-lambda", Name: "CfnFunction"},
			Python:     TargetName{Package: "aws_cdk.aws_lambda", Name: "CfnFunction"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.lambda", Name: "CfnFunction"},
			Golang:     TargetName{Package: "awslambda", Name: "CfnFunction"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.Lambda", Name: "CfnFunction"},
		},
		Required: []string{"Code", "Role"},
		Properties: map[string]TypeReference{
			"FunctionName": Prim(PrimitiveString),
			"Handler":      Prim(PrimitiveString),
			"Runtime":      Prim(PrimitiveString),
			"Role":         Prim(PrimitiveString),
			"Timeout":      Prim(PrimitiveNumber),
			"MemorySize":   Prim(PrimitiveNumber),
			"Code":         Named("AWS::Lambda::Function.Code"),
			"Environment":  Named("AWS::Lambda::Function.Environment"),
			"Tags":         List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::Lambda::Function.Code": {
		CfnName: "AWS::Lambda::Function.Code",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-lambda", Name: "CfnFunction.CodeProperty"},
			Python:     TargetName{Package: "aws_cdk.aws_lambda", Name: "CfnFunction.CodeProperty"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.lambda.CfnFunction", Name: "CodeProperty"},
			Golang:     TargetName{Package: "awslambda", Name: "CfnFunction_CodeProperty"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.Lambda.CfnFunction", Name: "CodeProperty"},
		},
		Properties: map[string]TypeReference{
			"S3Bucket": Prim(PrimitiveString),
			"S3Key":    Prim(PrimitiveString),
			"ZipFile":  Prim(PrimitiveString),
		},
	},
	"AWS::Lambda::Function.Environment": {
		CfnName: "AWS::Lambda::Function.Environment",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-lambda", Name: "CfnFunction.EnvironmentProperty"},
			Python:     TargetName{Package: "aws_cdk.aws_lambda", Name: "CfnFunction.EnvironmentProperty"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.lambda.CfnFunction", Name: "EnvironmentProperty"},
			Golang:     TargetName{Package: "awslambda", Name: "CfnFunction_EnvironmentProperty"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.Lambda.CfnFunction", Name: "EnvironmentProperty"},
		},
		Properties: map[string]TypeReference{
			"Variables": Map(Prim(PrimitiveString)),
		},
	},
	"AWS::IAM::Role": {
		CfnName: "AWS::IAM::Role",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-iam", Name: "CfnRole"},
			Python:     TargetName{Package: "aws_cdk.aws_iam", Name: "CfnRole"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.iam", Name: "CfnRole"},
			Golang:     TargetName{Package: "awsiam", Name: "CfnRole"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.IAM", Name: "CfnRole"},
		},
		Required: []string{"AssumeRolePolicyDocument"},
		Properties: map[string]TypeReference{
			"RoleName":                 Prim(PrimitiveString),
			"AssumeRolePolicyDocument": Prim(PrimitiveJSON),
			"ManagedPolicyArns":        List(Prim(PrimitiveString)),
			"Tags":                     List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::DynamoDB::Table": {
		CfnName: "AWS::DynamoDB::Table",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-dynamodb", Name: "CfnTable"},
			Python:     TargetName{Package: "aws_cdk.aws_dynamodb", Name: "CfnTable"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.dynamodb", Name: "CfnTable"},
			Golang:     TargetName{Package: "awsdynamodb", Name: "CfnTable"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.DynamoDB", Name: "CfnTable"},
		},
		Properties: map[string]TypeReference{
			"TableName":   Prim(PrimitiveString),
			"BillingMode": Prim(PrimitiveString),
			"Tags":        List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::SNS::Topic": {
		CfnName: "AWS::SNS::Topic",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-sns", Name: "CfnTopic"},
			Python:     TargetName{Package: "aws_cdk.aws_sns", Name: "CfnTopic"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.sns", Name: "CfnTopic"},
			Golang:     TargetName{Package: "awssns", Name: "CfnTopic"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.SNS", Name: "CfnTopic"},
		},
		Properties: map[string]TypeReference{
			"TopicName": Prim(PrimitiveString),
			"DisplayName": Prim(PrimitiveString),
			"Tags":      List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::SQS::Queue": {
		CfnName: "AWS::SQS::Queue",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-sqs", Name: "CfnQueue"},
			Python:     TargetName{Package: "aws_cdk.aws_sqs", Name: "CfnQueue"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.sqs", Name: "CfnQueue"},
			Golang:     TargetName{Package: "awssqs", Name: "CfnQueue"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.SQS", Name: "CfnQueue"},
		},
		Properties: map[string]TypeReference{
			"QueueName":                 Prim(PrimitiveString),
			"VisibilityTimeout":         Prim(PrimitiveNumber),
			"Tags":                      List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::EC2::VPC": {
		CfnName: "AWS::EC2::VPC",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-ec2", Name: "CfnVPC"},
			Python:     TargetName{Package: "aws_cdk.aws_ec2", Name: "CfnVPC"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.ec2", Name: "CfnVPC"},
			Golang:     TargetName{Package: "awsec2", Name: "CfnVPC"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.EC2", Name: "CfnVPC"},
		},
		Properties: map[string]TypeReference{
			"CidrBlock":          Prim(PrimitiveString),
			"EnableDnsSupport":   Prim(PrimitiveBoolean),
			"EnableDnsHostnames": Prim(PrimitiveBoolean),
			"Tags":               List(Named("aws-cdk-lib.CfnTag")),
		},
	},
	"AWS::EC2::SecurityGroup": {
		CfnName: "AWS::EC2::SecurityGroup",
		Name: PerTarget{
			TypeScript: TargetName{Package: "aws-cdk-lib/aws-ec2", Name: "CfnSecurityGroup"},
			Python:     TargetName{Package: "aws_cdk.aws_ec2", Name: "CfnSecurityGroup"},
			Java:       TargetName{Package: "software.amazon.awscdk.services.ec2", Name: "CfnSecurityGroup"},
			Golang:     TargetName{Package: "awsec2", Name: "CfnSecurityGroup"},
			CSharp:     TargetName{Package: "Amazon.CDK.AWS.EC2", Name: "CfnSecurityGroup"},
		},
		Required: []string{"GroupDescription"},
		Properties: map[string]TypeReference{
			"GroupDescription": Prim(PrimitiveString),
			"VpcId":            Prim(PrimitiveString),
			"Tags":             List(Named("aws-cdk-lib.CfnTag")),
		},
	},
}

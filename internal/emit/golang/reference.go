package golang

import (
	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
)

// emitReference renders a resolved Reference, grounded on
// original_source/src/synthesizer/golang/mod.rs's
// `impl GolangEmitter for Reference`.
func emitReference(ctx *context, out *codebuffer.Buffer, ref *ir.Reference) {
	switch ref.Origin {
	case ir.OriginCondition:
		out.Text(identifier(ref.Name, unexported))
	case ir.OriginGetAttribute:
		out.Text(identifier(ref.Name, unexported) + ".Attr" + identifier(ref.Attribute, exported) + "()")
	case ir.OriginLogicalId:
		out.Text(identifier(ref.Name, unexported) + ".Ref()")
	case ir.OriginParameter:
		out.Text("props." + identifier(ref.Name, exported))
	case ir.OriginPseudoParameter:
		out.Text("stack." + pseudoAccessor(ref.Pseudo) + "()")
	}
}

func pseudoAccessor(p ir.PseudoParameter) string {
	switch p {
	case ir.AccountId:
		return "Account"
	case ir.Partition:
		return "Partition"
	case ir.Region:
		return "Region"
	case ir.StackId:
		return "StackId"
	case ir.StackName:
		return "StackName"
	case ir.URLSuffix:
		return "UrlSuffix"
	case ir.NotificationArns:
		return "NotificationArns"
	default:
		return "Account"
	}
}

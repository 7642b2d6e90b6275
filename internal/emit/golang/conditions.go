package golang

import (
	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/ir"
)

// emitCondition renders a ConditionIr, grounded on original_source's
// `impl GolangEmitter for ConditionIr`.
func emitCondition(ctx *context, out *codebuffer.Buffer, c ir.ConditionIr) {
	switch c.Kind {
	case ir.CRef:
		out.Text(identifier(c.RefName, unexported))
	case ir.CAnd:
		emitJoinedBool(ctx, out, c.Operands, " && ")
	case ir.COr:
		emitJoinedBool(ctx, out, c.Operands, " || ")
	case ir.CNot:
		out.Text("!")
		emitCondition(ctx, out, c.Operands[0])
	case ir.CEquals:
		emitValue(ctx, out, *c.Left, "")
		out.Text(" == ")
		emitValue(ctx, out, *c.Right, "")
	case ir.CMap:
		out.Text(identifier(c.MapArgs[0].String, unexported) + "[")
		emitValue(ctx, out, c.MapArgs[1], "")
		out.Text("][")
		emitValue(ctx, out, c.MapArgs[2], "")
		out.Text("]")
	}
}

func emitJoinedBool(ctx *context, out *codebuffer.Buffer, operands []ir.ConditionIr, sep string) {
	for i, op := range operands {
		if i > 0 {
			out.Text(sep)
		}
		emitCondition(ctx, out, op)
	}
}

package golang

import (
	"github.com/lex00/cdk-from-cfn-go/internal/codebuffer"
	"github.com/lex00/cdk-from-cfn-go/internal/schema"
)

// ternaryHelper is the name of the generic function injected in place of
// Go's missing ternary operator (spec.md §4.5 point 7, §9 Open Question 1).
const ternaryHelper = "ifCondition"

// context carries the back-patched sections a resource/condition/output
// value may need to populate well after the section itself was written —
// the stdlib import lines and the ternary helper function — plus the
// once-only flags guarding each, grounded on original_source/src/
// synthesizer/golang/mod.rs's GoContext.
type context struct {
	schema *schema.Schema

	fmt     *codebuffer.Buffer
	time    *codebuffer.Buffer
	blank   *codebuffer.Buffer
	ternary *codebuffer.Buffer

	hasFmt     bool
	hasTime    bool
	hasBlank   bool
	hasTernary bool
}

func newContext(sch *schema.Schema, fmt, time, blank, ternary *codebuffer.Buffer) *context {
	return &context{schema: sch, fmt: fmt, time: time, blank: blank, ternary: ternary}
}

func (c *context) importFmt() {
	if c.hasFmt {
		return
	}
	c.fmt.Line(`"fmt"`)
	c.hasFmt = true
	c.insertBlank()
}

func (c *context) importTime() {
	if c.hasTime {
		return
	}
	c.time.Line(`"time"`)
	c.hasTime = true
	c.insertBlank()
}

func (c *context) insertBlank() {
	if c.hasBlank {
		return
	}
	c.blank.Newline()
	c.hasBlank = true
}

// insertTernary emits the ifCondition[T any] helper exactly once, the
// first time an Fn::If reaches value position.
func (c *context) insertTernary() {
	if c.hasTernary {
		return
	}
	c.ternary.Newline()
	comment := c.ternary.Indent("/// ")
	comment.Line("ifCondition is a helper function that replicates the ternary")
	comment.Line("operator that can be found in other languages. It is conceptually")
	comment.Line("equivalent to writing `cond ? whenTrue : whenFalse`, meaning it")
	comment.Line("returns `whenTrue` if `cond` is `true`, and `whenFalse` otherwise.")
	block := c.ternary.IndentWithOptions(codebuffer.Options{
		Indent:          "\t",
		Leading:         "func " + ternaryHelper + "[T any](cond bool, whenTrue T, whenFalse T) T {",
		Trailing:        "}",
		TrailingNewline: true,
	})
	block.IndentWithOptions(codebuffer.Options{
		Indent:          "\t",
		Leading:         "if cond {",
		Trailing:        "}",
		TrailingNewline: true,
	}).Line("return whenTrue")
	block.Line("return whenFalse")
	c.hasTernary = true
}

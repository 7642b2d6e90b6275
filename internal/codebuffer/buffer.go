// Package codebuffer implements the indent-aware, append-only text buffer
// shared by every emitter in internal/emit. It is the sole output
// abstraction the emitters use — none of them call a formatting library,
// and strings.Builder appears only for assembling a single inline fragment
// (an Fn::Sub string) that is then handed to Text.
//
// A Buffer owns a flat, ordered list of entries: literal lines, inline
// text fragments, and child buffers. A child created with Indent or
// IndentWithOptions is written back into its parent's output at the exact
// position it was created, so an emitter can create a child early (e.g.
// an import block) and keep appending to it well after the parent has
// moved on to writing the function body — the classic back-patch pattern
// used for "oh, this resource needs fmt after all" imports.
package codebuffer

import (
	"bytes"
	"io"
	"strings"
)

// Options configures a child buffer created with IndentWithOptions.
type Options struct {
	// Indent is the prefix appended to the parent's own indent for every
	// line this child writes itself.
	Indent string
	// Leading, if non-empty, is written once before the child's first
	// line, at the PARENT's indent (not the child's).
	Leading string
	// Trailing, if non-empty, is written once after the child's last
	// line, at the parent's indent.
	Trailing string
	// TrailingNewline controls whether a newline follows Trailing.
	TrailingNewline bool
}

type entryKind int

const (
	entryLine entryKind = iota
	entryText
	entryNewline
	entryChild
)

type entry struct {
	kind  entryKind
	text  string
	child *Buffer
}

// Buffer is a single node in the indent tree. The zero value is an empty
// buffer with no indent prefix; New returns the same kind of root buffer.
type Buffer struct {
	indent       string // prefix applied to lines this buffer writes itself
	parentIndent string // prefix applied to leading/trailing (the parent's own indent)
	leading      string
	trailing     string
	trailingNewline bool
	entries      []*entry
}

// New returns a root buffer with no indent prefix.
func New() *Buffer {
	return &Buffer{trailingNewline: true}
}

// Line appends a complete line, prefixed with this buffer's indent. Right
// after a Text fragment it instead finishes that line, with no indent.
func (b *Buffer) Line(text string) {
	b.entries = append(b.entries, &entry{kind: entryLine, text: text})
}

// Text appends a fragment without a trailing newline, continuing the
// current line. The first Text call after a Line/Newline still receives
// this buffer's indent; subsequent Text calls on the same line do not
// repeat it.
func (b *Buffer) Text(fragment string) {
	b.entries = append(b.entries, &entry{kind: entryText, text: fragment})
}

// Newline appends a blank line.
func (b *Buffer) Newline() {
	b.entries = append(b.entries, &entry{kind: entryNewline})
}

// Indent returns a child buffer that prefixes every line it writes with
// this buffer's indent plus prefix. The child is emitted at the position
// in the parent's output where Indent was called, regardless of how much
// more is later appended to the child.
func (b *Buffer) Indent(prefix string) *Buffer {
	return b.IndentWithOptions(Options{Indent: prefix})
}

// IndentWithOptions is Indent with the full back-patch surface: a leading
// line before the child's first line, a trailing line after its last, and
// control over whether the trailing line ends in a newline. Leading and
// trailing text is written at the PARENT's indent, not the child's — only
// lines the child itself appends get the extra prefix.
func (b *Buffer) IndentWithOptions(opts Options) *Buffer {
	child := &Buffer{
		indent:          b.indent + opts.Indent,
		parentIndent:    b.indent,
		leading:         opts.Leading,
		trailing:        opts.Trailing,
		trailingNewline: opts.TrailingNewline,
	}
	b.entries = append(b.entries, &entry{kind: entryChild, child: child})
	return child
}

// Section returns a child at the SAME indent as its parent, with no
// leading/trailing decoration, used purely for grouping — the canonical
// use is reserving a hole near the top of a file (e.g. for an import list)
// before the body that might need to populate it has been written.
func (b *Buffer) Section(trailingNewline bool) *Buffer {
	child := &Buffer{indent: b.indent, parentIndent: b.indent, trailingNewline: trailingNewline}
	b.entries = append(b.entries, &entry{kind: entryChild, child: child})
	return child
}

// Write flushes the buffer tree to w in creation order.
func (b *Buffer) Write(w io.Writer) error {
	bw := &lineWriter{w: w}
	b.write(bw)
	return bw.err
}

// String renders the buffer tree to a string. Emitters use this only in
// tests; production code paths always go through Write so output can
// stream to a file or stdout.
func (b *Buffer) String() string {
	var buf bytes.Buffer
	_ = b.Write(&buf)
	return buf.String()
}

// lineWriter tracks whether we're mid-line so Text() fragments on the same
// logical line don't each re-emit the indent.
type lineWriter struct {
	w       io.Writer
	atStart bool
	err     error
}

func (lw *lineWriter) write(s string) {
	if lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, s); err != nil {
		lw.err = err
	}
}

func (b *Buffer) write(lw *lineWriter) {
	if b.leading != "" {
		lw.write(b.parentIndent)
		lw.write(b.leading)
		lw.write("\n")
	}
	midLine := false
	for _, e := range b.entries {
		switch e.kind {
		case entryLine:
			if midLine {
				// Line() right after Text() finishes the line in progress
				// (the "trailer" pattern: Text writes a value, Line closes
				// it off with a trailing comma) rather than starting a
				// fresh indented line — stranding the trailer on its own
				// line would leave the previous line ending in a token
				// that triggers Go's automatic semicolon insertion,
				// silently breaking the statement the trailer terminates.
				lw.write(e.text)
				lw.write("\n")
				midLine = false
			} else {
				lw.write(b.indent)
				lw.write(e.text)
				lw.write("\n")
			}
		case entryText:
			if !midLine {
				lw.write(b.indent)
				midLine = true
			}
			lw.write(e.text)
		case entryNewline:
			if midLine {
				lw.write("\n")
				midLine = false
			}
			lw.write("\n")
		case entryChild:
			if midLine {
				lw.write("\n")
				midLine = false
			}
			e.child.write(lw)
		}
	}
	if midLine {
		lw.write("\n")
	}
	if b.trailing != "" {
		lw.write(b.parentIndent)
		lw.write(b.trailing)
		if b.trailingNewline {
			lw.write("\n")
		}
	}
}

// Indented is a small helper for tests: it strips one leading "\t\t" from
// each line so expected-output literals can be written at the call site's
// own indentation.
func Indented(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	for _, l := range lines {
		out = append(out, strings.TrimPrefix(l, "\t\t"))
	}
	return strings.Join(out, "\n")
}

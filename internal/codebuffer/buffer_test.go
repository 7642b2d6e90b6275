package codebuffer

import "testing"

func TestLineAndIndent(t *testing.T) {
	root := New()
	root.Line("package main")
	root.Newline()
	child := root.Indent("\t")
	child.Line("a")
	child.Line("b")
	root.Line("done")

	want := "package main\n\n\ta\n\tb\ndone\n"
	if got := root.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIndentWithOptionsLeadingTrailingAtParentIndent(t *testing.T) {
	root := New()
	outer := root.Indent("\t")
	block := outer.IndentWithOptions(Options{
		Indent:          "\t",
		Leading:         "import (",
		Trailing:        ")",
		TrailingNewline: true,
	})
	block.Line(`"fmt"`)

	want := "\timport (\n\t\t\"fmt\"\n\t)\n"
	if got := root.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBackPatchAfterLaterWrites(t *testing.T) {
	root := New()
	imports := root.Section(true)
	root.Line("body line 1")
	// Body writing discovers a need for an import only now.
	imports.Line(`"fmt"`)
	root.Line("body line 2")

	want := "\"fmt\"\nbody line 1\nbody line 2\n"
	if got := root.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextThenLineSameLogicalLine(t *testing.T) {
	root := New()
	root.Text("a: ")
	root.Text("b")
	root.Line(",")
	want := "a: b,\n"
	if got := root.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCreationOrderPreservedAcrossChildren(t *testing.T) {
	root := New()
	a := root.Section(false)
	root.Line("middle")
	b := root.Section(false)
	a.Line("A")
	b.Line("B")

	want := "A\nmiddle\nB\n"
	if got := root.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

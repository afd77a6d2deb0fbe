package cst

import (
	"strings"
	"testing"
)

// buildIf assembles `if x\ny = 1\nend\n` by hand. Code children hold
// constructs only at even indices, so the newlines around the body live in
// the block's whitespace slots, not inside the Code.
func buildIf() *File {
	cond := NewStatement(Text(""), NewLeaf("x"), Text(""), Text(""))
	assign := NewStatement(Text(""), NewLeaf("y = 1"), Text(""), Text(""))
	body := NewCode([]Child{assign})
	blk := NewBlock(KindIf,
		NewLeaf("if"), Text(" "), cond, Text("\n"), body,
		nil, Text("\n"), NewLeaf("end"), Text(""))
	return NewFile(Text(""), NewCode([]Child{blk}), Text("\n"))
}

func TestToTextConcatenatesSlots(t *testing.T) {
	f := buildIf()
	want := "if x\ny = 1\nend\n"
	if got := f.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestIterateFiltersByKind(t *testing.T) {
	f := buildIf()

	var stmts int
	for range Iterate(f, KindStatement) {
		stmts++
	}
	if stmts != 2 {
		t.Errorf("statements = %d, want 2 (head and body)", stmts)
	}

	var blocks int
	for n := range Iterate(f, KindIf) {
		if n.Kind() != KindIf {
			t.Errorf("unexpected kind %v", n.Kind())
		}
		blocks++
	}
	if blocks != 1 {
		t.Errorf("if blocks = %d, want 1", blocks)
	}
}

func TestIterateWithIndentLevels(t *testing.T) {
	f := buildIf()

	levels := make(map[string]int)
	for n, level := range IterateWithIndent(f) {
		if leaf, ok := n.(*Leaf); ok {
			levels[leaf.Value] = level
		}
	}
	if levels["if"] != 0 {
		t.Errorf("if at level %d, want 0", levels["if"])
	}
	if levels["y = 1"] != 1 {
		t.Errorf("body statement at level %d, want 1", levels["y = 1"])
	}
	if levels["end"] != 0 {
		t.Errorf("end at level %d, want 0", levels["end"])
	}
}

func TestPredecessorAndSuccessor(t *testing.T) {
	f := buildIf()

	var body *Code
	for n := range Iterate(f, KindCode) {
		if n.Parent().Kind() == KindIf {
			body = n.(*Code)
		}
	}
	if body == nil {
		t.Fatal("missing block body")
	}

	pred, ok := PredecessorText(body)
	if !ok {
		t.Fatal("body should have a Text predecessor")
	}
	if pred != Text("\n") {
		t.Errorf("predecessor = %q, want the post-head newline", pred)
	}

	SetPredecessor(body, Text("\n    "))
	if got, _ := PredecessorText(body); got != Text("\n    ") {
		t.Errorf("predecessor after set = %q, want %q", got, "\n    ")
	}

	succ, ok := Successor(body)
	if !ok {
		t.Fatal("body should have a successor")
	}
	if txt, isText := succ.(Text); !isText || txt != Text("\n") {
		t.Errorf("successor = %#v, want the pre-end gap", succ)
	}
}

func TestEqual(t *testing.T) {
	a, b := buildIf(), buildIf()
	if !Equal(a, b) {
		t.Error("identically built trees should compare equal")
	}

	for n := range Iterate(b, KindCode) {
		if n.Parent().Kind() == KindIf {
			SetPredecessor(n, Text("  "))
		}
	}
	if Equal(a, b) {
		t.Error("trees differing in a Text slot should not compare equal")
	}
}

func TestPrettyCompactElidesWhitespace(t *testing.T) {
	f := buildIf()

	full := Pretty(f, PrettyOptions{})
	compact := Pretty(f, PrettyOptions{Compact: true})
	if !strings.Contains(full, "Leaf(\"if\")") {
		t.Errorf("full dump missing keyword leaf:\n%s", full)
	}
	if len(compact) >= len(full) {
		t.Error("compact dump should be shorter than the full dump")
	}
}

func TestNormalizeBounds(t *testing.T) {
	stmt := NewStatement(Text(""), NewLeaf("x"), Text(""), Text(""))
	f := NewFile(Text("  \n"), NewCode([]Child{stmt}), Text(""))
	f.NormalizeBounds()
	if got := f.Text(); got != "x\n" {
		t.Errorf("Text() = %q, want %q", got, "x\n")
	}
}

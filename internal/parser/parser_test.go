package parser

import (
	"errors"
	"strings"
	"testing"

	"kakapo/internal/cst"
	"kakapo/internal/diag"
	"kakapo/internal/source"
)

func mustParse(t *testing.T, src string) *cst.File {
	t.Helper()
	f, err := Parse(source.New("test.m", []byte(src)))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"x\n",
		"x = 1\n",
		"  x   =   1  ;  \n\n",
		"x=1;y=2\n",
		"[a, b] = deal(1, 2);\n",
		"[ a ,b ]=f( x , y )\n",
		"y = a + b*c - d\n",
		"z = (a + b) * c\n",
		"m = [1, 2; 3 4]\n",
		"c = {1, 'two', \"three\"}\n",
		"e = []\n",
		"v = x(1, :)\n",
		"w = x{2}(3)\n",
		"h = @(x) x + 1\n",
		"g = @sin\n",
		"t = a'\n",
		"u = b.'\n",
		"p = b.*c\n",
		"hold on;\n",
		"n = ~flag\n",
		"s = 'it''s'\n",
		"r = 1.5e-3 + .5\n",
		"import pkg.fn\n",
		"import pkg.*\n",
		"if x\ny = 1\nend\n",
		"if x; y; end\n",
		"if a\n1\nelseif b\n2\nelse\n3\nend\n",
		"for i = 1:10\ndisp(i)\nend\n",
		"while x < 3 ...\n  comment\nx = x + 1\nend\n",
		"function y = f(x)\ny = x + 1\nend\n",
		"function [a, b] = g(c)\na = c\nb = c\nend\n",
		"try\nrisky()\ncatch err\ndisp(err)\nend\n",
		"try\nrisky()\nend;\n",
		"switch x\ncase 1\na\ncase {2, 3}\nb\notherwise\nc\nend\n",
		"classdef Foo < Base\nmethods\nfunction o = Foo()\nend\nend\nend\n",
		"% comment\nx = 1 % trailing\n",
		"a = f(1, ...\n      2)\n",
	}
	for _, src := range sources {
		f := mustParse(t, src)
		if got := f.Text(); got != src {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", src, got)
		}
	}
}

func TestOperationStaysFlat(t *testing.T) {
	f := mustParse(t, "y = a + b * c < d\n")
	var ops []*cst.Operation
	for n := range cst.Iterate(f, cst.KindOperation) {
		ops = append(ops, n.(*cst.Operation))
	}
	if len(ops) != 1 {
		t.Fatalf("got %d operations, want one flat chain", len(ops))
	}
	list := ops[0].List()
	if list.Len() != 4 {
		t.Fatalf("chain length = %d, want 4", list.Len())
	}
	wantCores := []string{"+", "*", "<"}
	for i, want := range wantCores {
		if core := DelimiterCore(string(list.Delimiter(i))); core != want {
			t.Errorf("delimiter %d core = %q, want %q", i, core, want)
		}
	}
}

func TestElementwiseOperatorNotSwallowedByName(t *testing.T) {
	tests := []struct {
		src  string
		lhs  string
		core string
	}{
		{"y = b.*c\n", "b", ".*"},
		{"y = b./c\n", "b", "./"},
		{"y = b.^c\n", "b", ".^"},
		{"y = pkg.val.*c\n", "pkg.val", ".*"},
	}
	for _, tt := range tests {
		f := mustParse(t, tt.src)
		op := firstOf(f, cst.KindOperation).(*cst.Operation)
		list := op.List()
		if list.Len() != 2 {
			t.Errorf("%q: chain length = %d, want 2", tt.src, list.Len())
			continue
		}
		if core := DelimiterCore(string(list.Delimiter(0))); core != tt.core {
			t.Errorf("%q: delimiter core = %q, want %q", tt.src, core, tt.core)
		}
		leaf := firstOf(list, cst.KindLeaf).(*cst.Leaf)
		if leaf.Value != tt.lhs {
			t.Errorf("%q: left operand = %q, want %q", tt.src, leaf.Value, tt.lhs)
		}
	}
}

func TestCommandTrailingSemicolon(t *testing.T) {
	f := mustParse(t, "hold   on ;\n")
	cmd, ok := f.Code().Constructs()[0].(*cst.Command)
	if !ok {
		t.Fatal("not parsed as command")
	}
	if cmd.Semicolon() != ";" {
		t.Errorf("semicolon slot = %q, want %q", cmd.Semicolon(), ";")
	}
	if got := f.Text(); got != "hold   on ;\n" {
		t.Errorf("round trip = %q", got)
	}

	f = mustParse(t, "hold on\n")
	cmd = f.Code().Constructs()[0].(*cst.Command)
	if cmd.Semicolon() != "" {
		t.Errorf("semicolon slot = %q, want empty", cmd.Semicolon())
	}
}

func TestStatementSemicolonSlots(t *testing.T) {
	tests := []struct {
		src    string
		wsSemi string
		semi   string
	}{
		{"x = 1\n", "", ""},
		{"x = 1;\n", "", ";"},
		{"x = 1   ;\n", "   ", ";"},
	}
	for _, tt := range tests {
		f := mustParse(t, tt.src)
		stmt := f.Code().Constructs()[0].(*cst.Statement)
		if got := string(stmt.SpaceBeforeSemicolon()); got != tt.wsSemi {
			t.Errorf("%q: space before semicolon = %q, want %q", tt.src, got, tt.wsSemi)
		}
		if got := string(stmt.Semicolon()); got != tt.semi {
			t.Errorf("%q: semicolon = %q, want %q", tt.src, got, tt.semi)
		}
	}
}

func TestAssignmentDoesNotSwallowEquality(t *testing.T) {
	f := mustParse(t, "x == 1\n")
	stmt := f.Code().Constructs()[0].(*cst.Statement)
	if _, ok := stmt.OutputArguments(); ok {
		t.Fatal("x == 1 parsed with output arguments")
	}
}

func TestCommandRecognition(t *testing.T) {
	commands := []struct {
		src   string
		words []string
	}{
		{"import pkg.Klass\n", []string{"import", "pkg.Klass"}},
		{"import a.* b.*\n", []string{"import", "a.*", "b.*"}},
		{"hold on;\n", []string{"hold", "on"}},
	}
	for _, tt := range commands {
		f := mustParse(t, tt.src)
		cmd, ok := f.Code().Constructs()[0].(*cst.Command)
		if !ok {
			t.Errorf("%q: not parsed as command", tt.src)
			continue
		}
		var got []string
		for _, w := range cmd.Words() {
			got = append(got, w.Value)
		}
		if len(got) != len(tt.words) {
			t.Errorf("%q: words = %v, want %v", tt.src, got, tt.words)
			continue
		}
		for i := range got {
			if got[i] != tt.words[i] {
				t.Errorf("%q: word %d = %q, want %q", tt.src, i, got[i], tt.words[i])
			}
		}
	}

	notCommands := []string{
		"x\n",       // single bare word stays an expression
		"x = 1\n",   // assignment
		"f(1)\n",    // call syntax
		"a + b\n",   // operator syntax
	}
	for _, src := range notCommands {
		f := mustParse(t, src)
		if _, ok := f.Code().Constructs()[0].(*cst.Command); ok {
			t.Errorf("%q: parsed as command", src)
		}
	}
}

func TestBlockShapes(t *testing.T) {
	f := mustParse(t, "if a\n1\nelseif b\n2\nelse\n3\nend;\n")
	block := f.Code().Constructs()[0].(*cst.Block)
	if block.Kind() != cst.KindIf {
		t.Fatalf("kind = %v, want If", block.Kind())
	}
	if kw := block.Keyword().Value; kw != "if" {
		t.Errorf("keyword = %q", kw)
	}
	head, ok := block.HeadStatement()
	if !ok {
		t.Fatal("if block has no head statement")
	}
	if got := cst.ToText(head); got != "a" {
		t.Errorf("head = %q, want %q", got, "a")
	}
	if block.Terminator().Value != "end" {
		t.Errorf("terminator = %q, want end", block.Terminator().Value)
	}
	if block.TrailingSemicolon() != ";" {
		t.Errorf("trailing semicolon = %q, want ;", block.TrailingSemicolon())
	}

	var kws []string
	for _, ch := range block.Clauses() {
		if leaf, ok := ch.(*cst.Leaf); ok && leaf.Value != "" {
			kws = append(kws, leaf.Value)
		}
	}
	if len(kws) != 2 || kws[0] != "elseif" || kws[1] != "else" {
		t.Errorf("clause keywords = %v", kws)
	}
}

func TestFunctionWithoutTerminator(t *testing.T) {
	f := mustParse(t, "function y = f(x)\ny = x\n")
	block := f.Code().Constructs()[0].(*cst.Block)
	if block.Kind() != cst.KindFunction {
		t.Fatalf("kind = %v, want Function", block.Kind())
	}
	if block.Terminator().Value != "" {
		t.Errorf("terminator = %q, want empty", block.Terminator().Value)
	}
}

func TestSwitchArmsStaySiblings(t *testing.T) {
	f := mustParse(t, "switch x\ncase 1\na\ncase 2\nb\nend\n")
	sw := f.Code().Constructs()[0].(*cst.Block)
	arms := sw.Body().Constructs()
	if len(arms) != 2 {
		t.Fatalf("got %d arms, want 2", len(arms))
	}
	for i, arm := range arms {
		b, ok := arm.(*cst.Block)
		if !ok || b.Kind() != cst.KindCase {
			t.Fatalf("arm %d is %T", i, arm)
		}
		if b.Terminator().Value != "" {
			t.Errorf("arm %d has terminator %q", i, b.Terminator().Value)
		}
	}
}

func TestCatchErrorVariable(t *testing.T) {
	f := mustParse(t, "try\nx\ncatch err\ny\nend\n")
	block := f.Code().Constructs()[0].(*cst.Block)
	clauses := block.Clauses()
	if len(clauses) != 6 {
		t.Fatalf("clause slots = %d, want 6", len(clauses))
	}
	if got := cst.ToText(clauses[3]); got != "err" {
		t.Errorf("error variable = %q, want err", got)
	}

	f = mustParse(t, "try\nx\ncatch\ny\nend\n")
	block = f.Code().Constructs()[0].(*cst.Block)
	clauses = block.Clauses()
	if got := cst.ToText(clauses[3]); got != "" {
		t.Errorf("error variable = %q, want empty", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line uint32
		col  uint32
	}{
		{"x = \n", 2, 1},
		{"if x\ny = 1\n", 3, 1},
		{"s = 'open\n", 1, 10},
		{"x = )\n", 1, 5},
	}
	for _, tt := range tests {
		_, err := Parse(source.New("test.m", []byte(tt.src)))
		if err == nil {
			t.Errorf("%q: expected error", tt.src)
			continue
		}
		var pe *diag.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: error type %T", tt.src, err)
			continue
		}
		if pe.Pos.Line != tt.line || pe.Pos.Col != tt.col {
			t.Errorf("%q: error at %d:%d, want %d:%d", tt.src, pe.Pos.Line, pe.Pos.Col, tt.line, tt.col)
		}
	}
}

func TestIdentifierLimit(t *testing.T) {
	long := strings.Repeat("a", 64)
	if _, err := Parse(source.New("test.m", []byte(long+" = 1\n"))); err == nil {
		t.Error("64-character identifier accepted")
	}
	ok := strings.Repeat("a", 63)
	mustParse(t, ok+" = 1\n")
}

func TestKeywordNeedsBoundary(t *testing.T) {
	// `ifx` is an identifier, not the start of a block.
	f := mustParse(t, "ifx = 1\n")
	stmt := f.Code().Constructs()[0].(*cst.Statement)
	if _, ok := stmt.OutputArguments(); !ok {
		t.Fatal("ifx = 1 did not parse as assignment")
	}
}

func TestContinuationFoldsIntoWhitespace(t *testing.T) {
	src := "y = 1 + ...\n    2\n"
	f := mustParse(t, src)
	if got := f.Text(); got != src {
		t.Fatalf("round trip mismatch: %q", got)
	}
	op := firstOf(f, cst.KindOperation).(*cst.Operation)
	if core := DelimiterCore(string(op.List().Delimiter(0))); core != "+" {
		t.Errorf("delimiter core = %q, want +", core)
	}
}

func firstOf(root cst.Node, kind cst.Kind) cst.Node {
	for n := range cst.Iterate(root, kind) {
		return n
	}
	return nil
}

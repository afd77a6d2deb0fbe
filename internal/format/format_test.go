package format

import (
	"strings"
	"testing"

	"kakapo/internal/cst"
	"kakapo/internal/parser"
	"kakapo/internal/source"
)

func formatSource(t *testing.T, src string) string {
	t.Helper()
	f, err := parser.Parse(source.New("test.m", []byte(src)))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return Format(f, Options{}).Text()
}

func TestDelimiterSpacing(t *testing.T) {
	tests := []struct{ in, want string }{
		{"f(1,  a ,c)\n", "f(1, a, c)\n"},
		{"m = [1,2; 3  4]\n", "m = [1, 2; 3 4]\n"},
		{"a = f(1, ...\n      2)\n", "a = f(1, 2)\n"},
		{"y = a+b.*c\n", "y = a + b .* c\n"},
	}
	for _, tt := range tests {
		if got := formatSource(t, tt.in); got != tt.want {
			t.Errorf("format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAssignmentSpacing(t *testing.T) {
	tests := []struct{ in, want string }{
		{"x  =1\n", "x = 1\n"},
		{"[a,b]=f()\n", "[a, b] = f()\n"},
	}
	for _, tt := range tests {
		if got := formatSource(t, tt.in); got != tt.want {
			t.Errorf("format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParenthesizedSpacing(t *testing.T) {
	if got := formatSource(t, "f( 1, 2 )\n"); got != "f(1, 2)\n" {
		t.Errorf("got %q", got)
	}
}

func TestSemicolonCleanup(t *testing.T) {
	got := formatSource(t, "if x; y; end;")
	if strings.Contains(got, "end;") {
		t.Errorf("semicolon after end survived: %q", got)
	}
	if strings.Contains(got, "if x;") {
		t.Errorf("semicolon after if condition survived: %q", got)
	}

	if got := formatSource(t, "return ;\n"); got != "return;\n" {
		t.Errorf("format(%q) = %q, want %q", "return ;\n", got, "return;\n")
	}
}

func TestMissingFunctionEnd(t *testing.T) {
	got := formatSource(t, "function f()\nx = 1\n")
	want := "function f()\n\n    x = 1\nend\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIndentationNesting(t *testing.T) {
	src := "function f()\nfor i = 1:3\nif x\ny = 1\nend\nend\nend\n"
	got := formatSource(t, src)
	if !strings.Contains(got, "\n            y = 1\n") {
		t.Errorf("body at depth 3 not indented 12 spaces:\n%s", got)
	}
	if !strings.Contains(got, "\n        end\n    end\nend\n") {
		t.Errorf("terminators not stepped back per level:\n%s", got)
	}
}

func TestClauseKeywordsAtOwningLevel(t *testing.T) {
	src := "if a\nx = 1\nelseif b\ny = 2\nelse\nz = 3\nend\n"
	got := formatSource(t, src)
	for _, kw := range []string{"\nelseif b\n", "\nelse\n", "\nend\n"} {
		if !strings.Contains(got, kw) {
			t.Errorf("clause keyword not at column zero, missing %q:\n%s", kw, got)
		}
	}
	for _, body := range []string{"\n    x = 1\n", "\n    y = 2\n", "\n    z = 3\n"} {
		if !strings.Contains(got, body) {
			t.Errorf("clause body not one level deep, missing %q:\n%s", body, got)
		}
	}
}

func TestBlankLineBeforeComments(t *testing.T) {
	got := formatSource(t, "x = 1\n% hey\n% you\ny = 2\n")
	want := "x = 1\n\n% hey\n% you\ny = 2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFileBounds(t *testing.T) {
	got := formatSource(t, "\n\n  x = 1  \n\n\n")
	if !strings.HasPrefix(got, "x") {
		t.Errorf("leading whitespace survived: %q", got)
	}
	if !strings.HasSuffix(got, "1\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("trailing whitespace not a single newline: %q", got)
	}
}

func TestLongStatementWrapping(t *testing.T) {
	a := strings.Repeat("a", 50)
	b := strings.Repeat("b", 50)
	c := strings.Repeat("c", 50)
	src := "x = f(" + a + ", " + b + ", " + c + ")\n"
	got := formatSource(t, src)
	want := "x = f( ...\n" +
		"    " + a + ", ...\n" +
		"    " + b + ", ...\n" +
		"    " + c + " ...\n" +
		")\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestShortStatementNotWrapped(t *testing.T) {
	got := formatSource(t, "x = f(1, 2)\n")
	if strings.Contains(got, "...") {
		t.Errorf("short call was wrapped: %q", got)
	}
}

func TestWrappingRespectsMaxLineOption(t *testing.T) {
	f, err := parser.Parse(source.New("test.m", []byte("x = f(abc, def)\n")))
	if err != nil {
		t.Fatal(err)
	}
	got := Format(f, Options{MaxLineLength: 10}).Text()
	if !strings.Contains(got, "...") {
		t.Errorf("call not wrapped under tight limit: %q", got)
	}
}

func TestScenarioFunctionSignature(t *testing.T) {
	got := formatSource(t, "function y=f(x)\ny=x+1\nend")
	want := "function y = f(x)\n\n    y = x + 1\nend\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIdempotence(t *testing.T) {
	sources := []string{
		"function y=f(x)\ny=x+1\nend",
		"if x; y; end;",
		"x = 1\n% hey\n% you\ny = 2\n",
		"m = [1,2; 3  4]\n",
		"for i = 1:3\nif x\ny = 1\nend\nend\n",
		"try\nrisky()\ncatch err\ndisp(err)\nend\n",
		"switch x\ncase 1\na\notherwise\nb\nend\n",
		"x = f(" + strings.Repeat("a", 60) + ", " + strings.Repeat("b", 60) + ")\n",
	}
	for _, src := range sources {
		once := formatSource(t, src)
		twice := formatSource(t, once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", src, once, twice)
		}
	}
}

func TestDeterminism(t *testing.T) {
	src := "function y=f(x)\ny=x+1\nend"
	parse := func() *cst.File {
		f, err := parser.Parse(source.New("test.m", []byte(src)))
		if err != nil {
			t.Fatal(err)
		}
		return f
	}
	a, b := Format(parse(), Options{}), Format(parse(), Options{})
	if !cst.Equal(a, b) {
		t.Error("repeated format yields structurally different trees")
	}
	if a.Text() != b.Text() {
		t.Error("repeated format yields different text")
	}
}

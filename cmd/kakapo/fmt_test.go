package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"kakapo/internal/driver"
	"kakapo/internal/parser"
	"kakapo/internal/source"
)

func TestSquawkLineRendersCaretForParseErrors(t *testing.T) {
	_, err := parser.Parse(source.New("bad.m", []byte("x = )\n")))
	if err == nil {
		t.Fatal("expected a parse error")
	}

	out := squawkLine(driver.FormatResult{Path: "bad.m", Err: err})
	if !strings.HasPrefix(out, "SQUAWK! bad.m:") {
		t.Errorf("missing squawk prefix: %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("want message, source line and caret, got %q", out)
	}
	if lines[1] != "x = )" {
		t.Errorf("source line = %q, want %q", lines[1], "x = )")
	}
	caret := strings.Index(lines[2], "^")
	if caret != 4 {
		t.Errorf("caret at column %d, want under the paren (4)", caret)
	}
}

func TestSquawkLineFallsBackForPlainErrors(t *testing.T) {
	res := driver.FormatResult{Path: "a.m", Err: errors.New("permission denied")}
	want := fmt.Sprintf("SQUAWK! %s: %v", res.Path, res.Err)
	if got := squawkLine(res); got != want {
		t.Errorf("squawkLine = %q, want %q", got, want)
	}
}

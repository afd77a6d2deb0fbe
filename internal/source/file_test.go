package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	f := New("test.m", []byte("ab\ncd\n\nx"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the '\n' terminating line 1
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, tc := range cases {
		got := f.Resolve(tc.off)
		if got != tc.want {
			t.Errorf("Resolve(%d) = %v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestResolveWithoutNewlines(t *testing.T) {
	f := New("test.m", []byte("abc"))
	got := f.Resolve(2)
	if (got != LineCol{1, 3}) {
		t.Fatalf("Resolve(2) = %v, want 1:3", got)
	}
}

func TestLine(t *testing.T) {
	f := New("test.m", []byte("first\nsecond\nlast"))

	cases := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "last"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.Line(tc.num); got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "crlf.m")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFx = 1\r\ny = 2\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(f.Content) != "x = 1\ny = 2\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected FileNormalizedCRLF flag")
	}
}

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	if !changed {
		t.Fatalf("expected change")
	}
	if string(out) != "a\rb\nc" {
		t.Fatalf("got %q", out)
	}
}

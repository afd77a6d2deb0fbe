package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindKakapoTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, ManifestName)
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindKakapoToml(nested)
	if err != nil {
		t.Fatalf("FindKakapoToml: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if path != manifest {
		t.Errorf("path = %q, want %q", path, manifest)
	}

	projectRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	if projectRoot != root {
		t.Errorf("root = %q, want %q", projectRoot, root)
	}
}

func TestFindKakapoTomlMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindKakapoToml(dir)
	if err != nil {
		t.Fatalf("FindKakapoToml: %v", err)
	}
	if ok {
		t.Error("expected no manifest in an empty temp tree")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	src := `
[package]
name = "flightless"

[format]
max_line_length = 100
indent_width = 2
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Package.Name != "flightless" {
		t.Errorf("name = %q, want %q", m.Package.Name, "flightless")
	}
	if m.Format.MaxLineLength != 100 {
		t.Errorf("max_line_length = %d, want 100", m.Format.MaxLineLength)
	}
	if m.Format.IndentWidth != 2 {
		t.Errorf("indent_width = %d, want 2", m.Format.IndentWidth)
	}
}

func TestLoadManifestDefaultsToZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("[package]\nname = \"bare\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Format.MaxLineLength != 0 || m.Format.IndentWidth != 0 {
		t.Errorf("unset [format] should stay zero, got %+v", m.Format)
	}
}

func TestLoadManifestRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("[format\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected a parse error for malformed TOML")
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a := HashBytes([]byte("a"))
	b := HashBytes([]byte("b"))
	if Combine(a, b) == Combine(b, a) {
		t.Error("Combine should depend on argument order")
	}
	if Combine(a) == Combine(a, b) {
		t.Error("Combine should depend on argument count")
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-01"}

	var buf bytes.Buffer
	renderVersionPretty(&buf, info, versionOptions{showHash: true, showDate: true})

	out := buf.String()
	if !strings.Contains(out, "kakapo 1.2.3") {
		t.Errorf("output missing banner: %q", out)
	}
	if !strings.Contains(out, "commit: abc123") {
		t.Errorf("output missing commit: %q", out)
	}
	if !strings.Contains(out, "built:  2026-01-01") {
		t.Errorf("output missing build date: %q", out)
	}
}

func TestRenderVersionJSONOmitsHidden(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}

	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, info, versionOptions{}); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload["tool"] != "kakapo" {
		t.Errorf("tool = %v, want kakapo", payload["tool"])
	}
	if _, ok := payload["git_commit"]; ok {
		t.Error("git_commit should be omitted unless requested")
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in   string
		want uiMode
		ok   bool
	}{
		{"", uiModeAuto, true},
		{"auto", uiModeAuto, true},
		{"ON", uiModeOn, true},
		{" off ", uiModeOff, true},
		{"sometimes", uiModeAuto, false},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("readUIMode(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("readUIMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

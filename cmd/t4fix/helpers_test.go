package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPathsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.xml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<x/>"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	files, err := expandPaths([]string{dir})
	if err != nil {
		t.Fatalf("expandPaths: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 XML files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.xml" || filepath.Base(files[1]) != "b.xml" {
		t.Fatalf("expected sorted a.xml, b.xml, got %v", files)
	}
}

func TestExpandPathsPassesFilesThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "return.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	files, err := expandPaths([]string{path})
	if err != nil {
		t.Fatalf("expandPaths: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("expected %q passed through, got %v", path, files)
	}
}

func TestExpandPathsMissing(t *testing.T) {
	if _, err := expandPaths([]string{"no-such-file.xml"}); err == nil {
		t.Fatalf("expected error for missing path")
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in   string
		want uiMode
		ok   bool
	}{
		{"", uiModeOff, true},
		{"off", uiModeOff, true},
		{"auto", uiModeAuto, true},
		{"ON", uiModeOn, true},
		{"fancy", "", false},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("readUIMode(%q): unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("readUIMode(%q): expected error", tc.in)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("readUIMode(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

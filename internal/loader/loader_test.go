package loader

import (
	"os"
	"path/filepath"
	"testing"

	"toylang/internal/source"
)

func mustWrite(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func names(files []*source.File) []string {
	var out []string
	for _, f := range files {
		out = append(out, filepath.Base(f.Name))
	}
	return out
}

func TestLoadDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "b.toy"), "fn b() => { };")
	mustWrite(t, filepath.Join(dir, "a.toy"), "fn a() => { };")
	mustWrite(t, filepath.Join(dir, "notes.txt"), "skip")
	mustWrite(t, filepath.Join(dir, "sub", "c.toy"), "fn c() => { };")

	files, err := Load([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	got := names(files)
	if len(got) != 2 || got[0] != "a.toy" || got[1] != "b.toy" {
		t.Fatalf("expected [a.toy b.toy], got %v", got)
	}
	if files[0].Input != "fn a() => { };" {
		t.Fatalf("expected file content, got %q", files[0].Input)
	}
}

func TestLoadFilesInOrderOnce(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toy")
	z := filepath.Join(dir, "z.src")
	mustWrite(t, a, "fn a() => { };")
	mustWrite(t, z, "fn z() => { };")

	files, err := Load([]string{z, a, dir})
	if err != nil {
		t.Fatal(err)
	}
	got := names(files)
	if len(got) != 2 || got[0] != "z.src" || got[1] != "a.toy" {
		t.Fatalf("expected [z.src a.toy], got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load([]string{filepath.Join(dir, "missing.toy")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load([]string{dir}); err == nil {
		t.Fatalf("expected error for directory without sources")
	}
}

func TestObjectName(t *testing.T) {
	f := source.NewFile("src/main.toy", "")
	if got := ObjectName(f); got != "main.toy.o" {
		t.Fatalf("expected main.toy.o, got %q", got)
	}
}

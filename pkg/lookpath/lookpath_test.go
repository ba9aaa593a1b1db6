package lookpath

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return p
}

func TestResolve_SingleMatch(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "prog", 0o755)
	t.Setenv("PATH", dir)

	got := Resolve("prog")
	if len(got) != 1 || got[0] != p {
		t.Errorf("Resolve = %v, want [%s]", got, p)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if got := Resolve("no-such-prog"); got != nil {
		t.Errorf("Resolve = %v, want nil", got)
	}
}

func TestResolve_MultipleMatches(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	writeFile(t, dir1, "prog", 0o755)
	writeFile(t, dir2, "prog", 0o755)
	t.Setenv("PATH", dir1+string(os.PathListSeparator)+dir2)

	if got := Resolve("prog"); len(got) != 2 {
		t.Errorf("Resolve = %v, want 2 matches", got)
	}
}

func TestResolve_DuplicatePathEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog", 0o755)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+dir)

	if got := Resolve("prog"); len(got) != 1 {
		t.Errorf("Resolve = %v, want 1 match for duplicated entry", got)
	}
}

func TestResolve_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog", 0o644)
	t.Setenv("PATH", dir)

	if got := Resolve("prog"); got != nil {
		t.Errorf("Resolve = %v, want nil for non-executable", got)
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "prog", 0o755)

	got := Resolve(p)
	if len(got) != 1 || got[0] != p {
		t.Errorf("Resolve = %v, want [%s]", got, p)
	}

	if got := Resolve(filepath.Join(dir, "missing")); got != nil {
		t.Errorf("Resolve = %v, want nil for missing explicit path", got)
	}
}

func TestResolve_Empty(t *testing.T) {
	if got := Resolve(""); got != nil {
		t.Errorf("Resolve = %v, want nil", got)
	}
}

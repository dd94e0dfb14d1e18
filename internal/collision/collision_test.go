package collision

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"filedrop/internal/fsys"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestResolve_NoConflict(t *testing.T) {
	tempDir := t.TempDir()

	candidate := filepath.Join(tempDir, "photo.jpg")
	got := Resolve(fsys.OS{}, candidate)
	if got != candidate {
		t.Errorf("Expected candidate unchanged, got %q", got)
	}
}

func TestResolve_FirstConflict(t *testing.T) {
	tempDir := t.TempDir()

	candidate := filepath.Join(tempDir, "photo.jpg")
	writeFile(t, candidate)

	got := Resolve(fsys.OS{}, candidate)
	want := filepath.Join(tempDir, "photo_1.jpg")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestResolve_SkipsTakenSuffixes(t *testing.T) {
	tempDir := t.TempDir()

	candidate := filepath.Join(tempDir, "photo.jpg")
	writeFile(t, candidate)
	writeFile(t, filepath.Join(tempDir, "photo_1.jpg"))
	writeFile(t, filepath.Join(tempDir, "photo_2.jpg"))

	got := Resolve(fsys.OS{}, candidate)
	want := filepath.Join(tempDir, "photo_3.jpg")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestResolve_NoExtension(t *testing.T) {
	tempDir := t.TempDir()

	candidate := filepath.Join(tempDir, "notes")
	writeFile(t, candidate)

	got := Resolve(fsys.OS{}, candidate)
	want := filepath.Join(tempDir, "notes_1")
	if got != want {
		t.Errorf("Expected %q (no trailing dot), got %q", want, got)
	}
}

// A candidate that already carries a numeric suffix is not parsed: the
// counter is appended fresh.
func TestResolve_ExistingSuffixNotCollapsed(t *testing.T) {
	tempDir := t.TempDir()

	candidate := filepath.Join(tempDir, "photo_1.jpg")
	writeFile(t, candidate)

	got := Resolve(fsys.OS{}, candidate)
	want := filepath.Join(tempDir, "photo_1_1.jpg")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// Feeding the same candidate back while creating each returned path
// yields a strictly increasing, gap-free suffix sequence.
func TestResolve_SequenceIsGapFree(t *testing.T) {
	tempDir := t.TempDir()

	candidate := filepath.Join(tempDir, "report.pdf")
	writeFile(t, candidate)

	for n := 1; n <= 5; n++ {
		got := Resolve(fsys.OS{}, candidate)
		want := filepath.Join(tempDir, "report_"+strconv.Itoa(n)+".pdf")
		if got != want {
			t.Fatalf("Call %d: expected %q, got %q", n, want, got)
		}
		writeFile(t, got)
	}
}

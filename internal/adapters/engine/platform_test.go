package engine

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLibraryName(t *testing.T) {
	cases := []struct {
		goos string
		want string
	}{
		{"linux", "libbapcod-shared.so"},
		{"darwin", "libbapcod-shared.dylib"},
		{"windows", "bapcod-shared.dll"},
	}
	for _, tc := range cases {
		got, err := libraryName(tc.goos)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.goos, err)
		}
		if got != tc.want {
			t.Fatalf("%s: name = %q, want %q", tc.goos, got, tc.want)
		}
	}
}

func TestLibraryNameUnsupported(t *testing.T) {
	_, err := libraryName("plan9")
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
}

// Candidates are ordered: executable directory, platform subdirectory of the
// dependency root, then the bare name for the system loader.
func TestLibraryCandidatesOrder(t *testing.T) {
	candidates, err := libraryCandidates("linux", "/opt/engine/lib")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) < 2 {
		t.Fatalf("got %d candidates: %v", len(candidates), candidates)
	}

	last := candidates[len(candidates)-1]
	if last != "libbapcod-shared.so" {
		t.Fatalf("last candidate = %q, want bare name", last)
	}

	platformPath := filepath.Join("/opt/engine/lib", "Linux", "libbapcod-shared.so")
	if candidates[len(candidates)-2] != platformPath {
		t.Fatalf("penultimate candidate = %q, want %q", candidates[len(candidates)-2], platformPath)
	}

	for _, c := range candidates[:len(candidates)-1] {
		if !strings.HasSuffix(c, "libbapcod-shared.so") {
			t.Fatalf("candidate %q does not end with the library name", c)
		}
	}
}

func TestLibraryCandidatesWithoutLibDir(t *testing.T) {
	candidates, err := libraryCandidates("windows", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range candidates {
		if strings.Contains(c, "Windows") {
			t.Fatalf("candidate %q uses an unset dependency root", c)
		}
	}
	if candidates[len(candidates)-1] != "bapcod-shared.dll" {
		t.Fatalf("last candidate = %q, want bare name", candidates[len(candidates)-1])
	}
}

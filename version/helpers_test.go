package version

import (
	"os"
	"testing"
	"time"
)

// pinFile writes content to path and sets its modification time well into
// the past, so that any rewrite is detectable regardless of clock
// resolution.
func pinFile(t *testing.T, path, content string) time.Time {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	past := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatal(err)
	}

	return past
}

func assertContent(t *testing.T, path, want string) {
	t.Helper()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	if string(got) != want {
		t.Errorf("content of %s = %q, want %q", path, got, want)
	}
}

func assertModTime(t *testing.T, path string, past time.Time, unchanged bool) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if same := info.ModTime().Equal(past); same != unchanged {
		t.Errorf("modification time of %s = %v, unchanged = %v, want %v",
			path, info.ModTime(), same, unchanged)
	}
}

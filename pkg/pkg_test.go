package pkg

import (
	"errors"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "gitver"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file next to this package.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}

	if strings.ContainsAny(Version, " \t\r\n") {
		t.Errorf("Expected Version to be trimmed, got %q", Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("Expected Author to have at least one entry")
	}

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew"
	}) {
		t.Errorf("Expected Author to contain %q", "ardnew")
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestError_ChainsMessages(t *testing.T) {
	inner := MakeErrorf("no such key %q", "out-dir")
	err := ErrParse.Wrap(inner)

	want := `parse error: no such key "out-dir"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if got := len(UnwrapErrors(err)); got < 2 {
		t.Errorf("expected at least 2 errors in chain, got %d", got)
	}
}

func TestMakeError_SkipsNil(t *testing.T) {
	if err := MakeError(nil, nil); len(err) != 0 {
		t.Errorf("expected empty chain, got %v", err)
	}
}

func TestError_IsMatchesWrappedSentinel(t *testing.T) {
	err := error(ErrYAMLMarshal.Wrapf("unsupported type %T", struct{}{}))

	if !errors.Is(err, ErrYAMLMarshal) {
		t.Errorf("expected errors.Is(%v, ErrYAMLMarshal)", err)
	}

	if errors.Is(err, ErrJSONMarshal) {
		t.Errorf("unexpected errors.Is(%v, ErrJSONMarshal)", err)
	}
}

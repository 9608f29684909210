package storage

import (
	"errors"
	"mime/multipart"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":           "report.pdf",
		"note from doctor.pdf": "note_from_doctor.pdf",
		"../../etc/passwd":     "passwd",
		"weird*chars?.txt":     "weird_chars_.txt",
		"":                     "file",
		"...":                  "file",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateKeyNeverCollides(t *testing.T) {
	a := GenerateKey("report.pdf")
	b := GenerateKey("report.pdf")
	if a == b {
		t.Fatalf("two keys for the same filename collided: %q", a)
	}
	if !strings.HasSuffix(a, "report.pdf") {
		t.Fatalf("key should keep the readable name, got %q", a)
	}
}

func TestSaveMultipartRejectsOversizeFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fh := &multipart.FileHeader{Filename: "scan.pdf", Size: MaxUploadSize + 1}
	if _, err := store.SaveMultipart(fh); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("want ErrFileTooLarge, got %v", err)
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"", "../secret", "a/b", "..", "dir/../../x"} {
		if _, err := store.Path(key); err == nil {
			t.Errorf("Path(%q) should be rejected", key)
		}
	}
}

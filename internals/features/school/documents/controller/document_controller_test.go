package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"edubridge_backend/internals/helpers/storage"
	"edubridge_backend/internals/testutil"
)

func uploadDoc(t *testing.T, env *testutil.Env, token, fileName string, content []byte) string {
	t.Helper()
	resp, body := env.DoMultipart(t, http.MethodPost, "/document/upload", token,
		map[string]string{"title": "Term notice", "type": "notice"},
		"file", fileName, content,
	)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: want 200, got %d (%s)", resp.StatusCode, body.Message)
	}

	var doc struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body.Data, &doc); err != nil {
		t.Fatal(err)
	}
	return doc.ID
}

func TestUploadRequiresFilePart(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "clerk", "clerk")
	token := env.Login(t, "clerk")

	resp, body := env.DoMultipart(t, http.MethodPost, "/document/upload", token,
		map[string]string{"title": "Empty", "type": "notice"},
		"", "", nil,
	)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	if body.ErrorCode != "BAD_REQUEST" {
		t.Fatalf("want BAD_REQUEST, got %q", body.ErrorCode)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "clerk", "clerk")
	token := env.Login(t, "clerk")

	big := bytes.Repeat([]byte("x"), int(storage.MaxUploadSize)+1)
	resp, body := env.DoMultipart(t, http.MethodPost, "/document/upload", token,
		map[string]string{"title": "Huge scan", "type": "other"},
		"file", "scan.bin", big,
	)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d (%s)", resp.StatusCode, body.Message)
	}
	if body.ErrorCode != "BAD_REQUEST" {
		t.Fatalf("want BAD_REQUEST, got %q", body.ErrorCode)
	}
}

func TestSameFilenameUploadsKeepBothFiles(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "clerk", "clerk")
	token := env.Login(t, "clerk")

	firstID := uploadDoc(t, env, token, "report.pdf", []byte("first content"))
	secondID := uploadDoc(t, env, token, "report.pdf", []byte("second content"))

	// the second upload must not clobber the first
	for id, want := range map[string]string{
		firstID:  "first content",
		secondID: "second content",
	} {
		resp, _ := env.DoJSON(t, http.MethodGet, "/document/view/"+id, token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("view %s: want 200, got %d", id, resp.StatusCode)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(raw) != want {
			t.Fatalf("view %s: want %q, got %q", id, want, raw)
		}
	}
}

func TestViewStreamsAttachment(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "clerk", "clerk")
	token := env.Login(t, "clerk")

	id := uploadDoc(t, env, token, "term plan.docx", []byte("plan bytes"))

	resp, _ := env.DoJSON(t, http.MethodGet, "/document/view/"+id, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	disposition := resp.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") {
		t.Fatalf("want attachment disposition, got %q", disposition)
	}
	// the download carries the sanitized original name, not the storage key
	if !strings.Contains(disposition, "term_plan.docx") {
		t.Fatalf("want sanitized original filename in %q", disposition)
	}
}

func TestViewMissingDocument(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "clerk", "clerk")
	token := env.Login(t, "clerk")

	resp, body := env.DoJSON(t, http.MethodGet, "/document/view/"+uuid.New().String(), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	if body.ErrorCode != "NOT_FOUND" {
		t.Fatalf("want NOT_FOUND JSON, got %q", body.ErrorCode)
	}
}

func TestUploadTypeFallsBackToExtension(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "clerk", "clerk")
	token := env.Login(t, "clerk")

	resp, body := env.DoMultipart(t, http.MethodPost, "/document/upload", token,
		map[string]string{"title": "Slides"},
		"file", "lecture.pdf", []byte("%PDF-1.4"),
	)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var doc struct {
		DocumentType string `json:"document_type"`
	}
	if err := json.Unmarshal(body.Data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.DocumentType != "pdf" {
		t.Fatalf("want pdf fallback, got %q", doc.DocumentType)
	}
}

package controller_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"edubridge_backend/internals/features/school/leaves/model"
	"edubridge_backend/internals/testutil"
)

func fileLeave(t *testing.T, env *testutil.Env, token string) string {
	t.Helper()
	resp, body := env.DoJSON(t, http.MethodPost, "/leave/request", token, map[string]string{
		"start_date": "2026-04-01",
		"end_date":   "2026-04-03",
		"reason":     "family event",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leave request: want 200, got %d (%s)", resp.StatusCode, body.Message)
	}

	var leave struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body.Data, &leave); err != nil {
		t.Fatal(err)
	}
	if leave.Status != "pending" {
		t.Fatalf("new leave must be pending, got %q", leave.Status)
	}
	return leave.ID
}

func TestApproveIsIdempotent(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "stud", "student")
	env.Register(t, "boss", "admin")

	leaveID := fileLeave(t, env, env.Login(t, "stud"))
	adminToken := env.Login(t, "boss")

	for i := 0; i < 2; i++ {
		resp, body := env.DoJSON(t, http.MethodPost, "/leave/approve/"+leaveID, adminToken, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("approve #%d: want 200, got %d (%s)", i+1, resp.StatusCode, body.Message)
		}
	}

	var leave model.LeaveModel
	if err := env.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		t.Fatal(err)
	}
	if leave.Status != "approved" {
		t.Fatalf("want approved, got %q", leave.Status)
	}
}

func TestApproveMissingLeave(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "boss", "principal")
	token := env.Login(t, "boss")

	resp, body := env.DoJSON(t, http.MethodPost, "/leave/approve/"+uuid.New().String(), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	if body.ErrorCode != "NOT_FOUND" {
		t.Fatalf("want NOT_FOUND, got %q", body.ErrorCode)
	}
}

func TestApproveForbiddenForNonApprovers(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "stud", "student")
	env.Register(t, "teach", "teacher")

	leaveID := fileLeave(t, env, env.Login(t, "stud"))

	resp, _ := env.DoJSON(t, http.MethodPost, "/leave/approve/"+leaveID, env.Login(t, "teach"), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("teacher approve: want 403, got %d", resp.StatusCode)
	}

	var leave model.LeaveModel
	if err := env.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		t.Fatal(err)
	}
	if leave.Status != "pending" {
		t.Fatalf("status must stay pending, got %q", leave.Status)
	}
}

func TestRejectLeave(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "stud", "student")
	env.Register(t, "boss", "admin")

	leaveID := fileLeave(t, env, env.Login(t, "stud"))

	resp, _ := env.DoJSON(t, http.MethodPost, "/leave/reject/"+leaveID, env.Login(t, "boss"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reject: want 200, got %d", resp.StatusCode)
	}

	var leave model.LeaveModel
	if err := env.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		t.Fatal(err)
	}
	if leave.Status != "rejected" {
		t.Fatalf("want rejected, got %q", leave.Status)
	}
}

func TestLeaveRequestWithAttachment(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "stud", "student")
	token := env.Login(t, "stud")

	resp, body := env.DoMultipart(t, http.MethodPost, "/leave/request", token,
		map[string]string{
			"start_date": "2026-04-01",
			"end_date":   "2026-04-02",
			"reason":     "medical",
		},
		"document", "note from doctor.pdf", []byte("evidence bytes"),
	)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", resp.StatusCode, body.Message)
	}

	var leave struct {
		DocumentPath *string `json:"document_path"`
	}
	if err := json.Unmarshal(body.Data, &leave); err != nil {
		t.Fatal(err)
	}
	if leave.DocumentPath == nil || *leave.DocumentPath == "" {
		t.Fatal("attachment key missing on leave row")
	}

	raw, err := os.ReadFile(filepath.Join(env.Store.Dir, *leave.DocumentPath))
	if err != nil {
		t.Fatalf("stored blob unreadable: %v", err)
	}
	if string(raw) != "evidence bytes" {
		t.Fatalf("stored bytes differ: %q", raw)
	}
}

func TestLeaveRowPersistsWhenAttachmentSaveFails(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "stud", "student")
	token := env.Login(t, "stud")

	// kill the upload directory so the attachment write cannot succeed
	if err := os.RemoveAll(env.Store.Dir); err != nil {
		t.Fatal(err)
	}

	resp, body := env.DoMultipart(t, http.MethodPost, "/leave/request", token,
		map[string]string{
			"start_date": "2026-04-01",
			"end_date":   "2026-04-02",
			"reason":     "medical",
		},
		"document", "note from doctor.pdf", []byte("evidence bytes"),
	)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200 despite lost attachment, got %d (%s)", resp.StatusCode, body.Message)
	}

	var created struct {
		ID           string  `json:"id"`
		DocumentPath *string `json:"document_path"`
	}
	if err := json.Unmarshal(body.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.DocumentPath != nil {
		t.Fatalf("attachment key must be absent, got %q", *created.DocumentPath)
	}

	var leave model.LeaveModel
	if err := env.DB.First(&leave, "leave_id = ?", created.ID).Error; err != nil {
		t.Fatalf("leave row must still be persisted: %v", err)
	}
	if leave.Status != "pending" {
		t.Fatalf("want pending, got %q", leave.Status)
	}
	if leave.DocumentPath != nil {
		t.Fatalf("document path must be nil, got %q", *leave.DocumentPath)
	}
}

func TestLeaveRequestMissingFields(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Register(t, "stud", "student")
	token := env.Login(t, "stud")

	resp, _ := env.DoJSON(t, http.MethodPost, "/leave/request", token, map[string]string{
		"start_date": "2026-04-01",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

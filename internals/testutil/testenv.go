package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"edubridge_backend/internals/configs"
	attendanceModel "edubridge_backend/internals/features/school/attendance/model"
	documentModel "edubridge_backend/internals/features/school/documents/model"
	leaveModel "edubridge_backend/internals/features/school/leaves/model"
	userModel "edubridge_backend/internals/features/users/user/model"
	helper "edubridge_backend/internals/helpers"
	"edubridge_backend/internals/helpers/storage"
	routes "edubridge_backend/internals/route"
)

// Env is one fully wired app over an in-memory database and a temp upload
// dir, torn down with the test.
type Env struct {
	App   *fiber.App
	DB    *gorm.DB
	Store *storage.LocalStore
}

func NewEnv(t *testing.T) *Env {
	t.Helper()

	configs.JWTSecret = "test-secret"

	// named in-memory DB so the pool's connections all see the same schema
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
		&leaveModel.LeaveModel{},
		&documentModel.DocumentModel{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("init test store: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: helper.FromFiberError,
		BodyLimit:    int(storage.MaxUploadSize) + 1<<20,
	})
	routes.SetupRoutes(app, db, store)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &Env{App: app, DB: db, Store: store}
}

// Body is the standard response envelope.
type Body struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func (e *Env) DoJSON(t *testing.T, method, path, token string, payload any) (*http.Response, Body) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reqBody)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.App.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp, decodeBody(t, resp)
}

// DoMultipart sends a multipart form with optional text fields and one
// optional file part.
func (e *Env) DoMultipart(t *testing.T, method, path, token string, fields map[string]string, filePart, fileName string, fileContent []byte) (*http.Response, Body) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filePart != "" {
		fw, err := mw.CreateFormFile(filePart, fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest(method, path, buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.App.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) Body {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	var b Body
	// non-JSON bodies (file streams) just leave the envelope empty
	_ = json.Unmarshal(raw, &b)
	return b
}

// Register creates an account through the public endpoint.
func (e *Env) Register(t *testing.T, username, role string) {
	t.Helper()
	resp, body := e.DoJSON(t, http.MethodPost, "/register", "", map[string]string{
		"username":   username,
		"email":      username + "@example.edu",
		"role":       role,
		"first_name": "Test",
		"last_name":  strings.ToUpper(role[:1]) + role[1:],
		"password":   "secret123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: got %d (%s)", username, resp.StatusCode, body.Message)
	}
}

// Login returns the signed session token for an account registered with
// Register's default password.
func (e *Env) Login(t *testing.T, username string) string {
	t.Helper()
	resp, body := e.DoJSON(t, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: got %d (%s)", username, resp.StatusCode, body.Message)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("login %s: no token in response", username)
	}
	return data.Token
}

// UserID looks up the uuid behind a username straight from the store.
func (e *Env) UserID(t *testing.T, username string) string {
	t.Helper()
	var user userModel.UserModel
	if err := e.DB.Where("user_name = ?", username).First(&user).Error; err != nil {
		t.Fatalf("lookup user %s: %v", username, err)
	}
	return user.ID.String()
}

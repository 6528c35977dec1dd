package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/lumen-studio/recruit-intake/internal/db"
	"github.com/lumen-studio/recruit-intake/internal/models"
	"github.com/lumen-studio/recruit-intake/internal/security"
	"github.com/lumen-studio/recruit-intake/internal/service"
	"github.com/lumen-studio/recruit-intake/internal/webui"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:app_router_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, errOpen := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}
	t.Cleanup(func() { closeDatabase(conn) })

	admin, errCreate := service.NewAdminService(conn).Create(context.Background(), "admin", "123456")
	if errCreate != nil {
		t.Fatalf("seed admin: %v", errCreate)
	}
	tokens, errTokens := security.NewTokenService("router-test-secret")
	if errTokens != nil {
		t.Fatalf("token service: %v", errTokens)
	}
	token, errIssue := tokens.Issue(security.Identity{AdminID: admin.ID, Username: admin.Username})
	if errIssue != nil {
		t.Fatalf("issue token: %v", errIssue)
	}
	bundle, errLoad := webui.Load()
	if errLoad != nil {
		t.Fatalf("load web ui: %v", errLoad)
	}
	return NewRouter(conn, tokens, bundle), token
}

func serve(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestActiveToggleScenario(t *testing.T) {
	router, token := setupRouter(t)

	w := serve(router, http.MethodPost, "/api/admin/recruitments", token, map[string]any{"title": "Animator", "description": "Make things move"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var rec models.Recruitment
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = serve(router, http.MethodGet, "/api/recruitments", "", nil)
	if !strings.Contains(w.Body.String(), "Animator") {
		t.Fatalf("active posting missing from public list: %s", w.Body.String())
	}

	w = serve(router, http.MethodPatch, fmt.Sprintf("/api/admin/recruitments/%d", rec.ID), token, map[string]any{"isActive": false})
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate: expected status 200, got %d", w.Code)
	}

	w = serve(router, http.MethodGet, "/api/recruitments", "", nil)
	if strings.Contains(w.Body.String(), "Animator") {
		t.Fatalf("inactive posting still listed: %s", w.Body.String())
	}
	w = serve(router, http.MethodGet, fmt.Sprintf("/api/recruitments/%d", rec.ID), "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Animator") {
		t.Fatalf("detail should still resolve: status %d body %s", w.Code, w.Body.String())
	}

	w = serve(router, http.MethodPost, "/api/applications", "", map[string]any{
		"recruitmentId": rec.ID, "email": "a@b.co", "qq": "10001", "bilibili": "up",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("intake on inactive posting: expected status 400, got %d", w.Code)
	}
}

func TestRouterCarriesRequestID(t *testing.T) {
	router, _ := setupRouter(t)
	w := serve(router, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestWebUIFallback(t *testing.T) {
	router, _ := setupRouter(t)

	cases := []struct {
		method string
		path   string
		status int
		want   string
	}{
		{method: http.MethodGet, path: "/", status: http.StatusOK, want: `<div id="app">`},
		{method: http.MethodGet, path: "/recruitments/12", status: http.StatusOK, want: `<div id="app">`},
		{method: http.MethodGet, path: "/admin/login", status: http.StatusOK, want: `<div id="app">`},
		{method: http.MethodGet, path: "/assets/app.js", status: http.StatusOK, want: "adminToken"},
		{method: http.MethodGet, path: "/assets/missing.js", status: http.StatusNotFound},
		{method: http.MethodGet, path: "/favicon.ico", status: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/unknown", status: http.StatusNotFound, want: `"error":"not found"`},
		{method: http.MethodPost, path: "/api/recruitments", status: http.StatusNotFound, want: `"error":"not found"`},
		{method: http.MethodPost, path: "/somewhere", status: http.StatusNotFound},
	}
	for _, tc := range cases {
		w := serve(router, tc.method, tc.path, "", nil)
		if w.Code != tc.status {
			t.Fatalf("%s %s: expected status %d, got %d", tc.method, tc.path, tc.status, w.Code)
		}
		if tc.want != "" && !strings.Contains(w.Body.String(), tc.want) {
			t.Fatalf("%s %s: body missing %q", tc.method, tc.path, tc.want)
		}
	}
}

func TestIsAPIRoute(t *testing.T) {
	cases := map[string]bool{
		"/api":              true,
		"/api/recruitments": true,
		"/healthz":          true,
		"/apiary":           false,
		"/admin":            false,
		"/":                 false,
	}
	for input, want := range cases {
		if got := isAPIRoute(input); got != want {
			t.Fatalf("isAPIRoute(%q) = %v, want %v", input, got, want)
		}
	}
}

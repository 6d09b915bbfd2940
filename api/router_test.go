package api

import (
	"context"
	"encoding/json"
	"harborline_server/database"
	"harborline_server/structs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func newTestApp(t *testing.T) chi.Router {
	t.Helper()

	cfg := &structs.Config{
		Server: &structs.ServerConfig{
			AppName:     "Harborline",
			Environment: "development",
			Port:        ":0",
		},
		Cors: &structs.CorsConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		},
		Database: &structs.DatabaseConfig{
			Path:         filepath.Join(t.TempDir(), "app.db"),
			BusyTimeout:  5 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Admin: &structs.AdminConfig{
			Email:    "admin@example.com",
			Password: "swordfish",
			Name:     "Administrator",
		},
		Settings: &structs.SettingsConfig{
			StoreName:     "Harborline",
			SupportEmail:  "support@harborline.example",
			Currency:      "USD",
			DefaultOrigin: "Rotterdam",
		},
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.InitSchema(context.Background(), cfg); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	return App(cfg, db)
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// A fresh store has no rows anywhere; every list endpoint must still
// answer with a bare JSON array, not null.
func TestEmptyListsAreBareArrays(t *testing.T) {
	r := newTestApp(t)

	for _, path := range []string{
		"/api/products",
		"/api/categories",
		"/api/orders",
		"/api/packages",
	} {
		rec := doJSON(t, r, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Fatalf("GET %s empty list body = %q, want []", path, body)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["message"] != "Backend is running" {
		t.Fatalf("body = %v", body)
	}
}

func TestUnknownRouteReturnsError(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("body = %v, want an error message", body)
	}
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodPost, "/api/products",
		`{"name":"Brass Cleat","price":12.5,"stock":40}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created product has no id")
	}

	rec = doJSON(t, r, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("list is not a bare array: %v, body %s", err, rec.Body.String())
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/products/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	var deleted map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("decode delete body: %v", err)
	}
	if !deleted["success"] {
		t.Fatalf("delete body = %v, want success true", deleted)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/products/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

// The update echo returns only the overwritten columns; timestamps
// stay store-side and never appear in a PUT response.
func TestUpdateEchoOmitsTimestamps(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodPost, "/api/products",
		`{"name":"Brass Cleat","price":12.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec = doJSON(t, r, http.MethodPut, "/api/products/"+created.ID,
		`{"name":"Brass Cleat","price":13.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var echo map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &echo); err != nil {
		t.Fatalf("decode echo: %v", err)
	}
	if _, ok := echo["createdAt"]; ok {
		t.Fatalf("update echo contains createdAt: %v", echo)
	}
	if _, ok := echo["updatedAt"]; ok {
		t.Fatalf("update echo contains updatedAt: %v", echo)
	}
	if echo["price"] != 13.0 {
		t.Fatalf("echo price = %v, want 13.0", echo["price"])
	}
}

func TestCreateCategoryWithoutNameRejected(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodPost, "/api/categories", `{"description":"no name"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func TestDuplicateCategoryNameReturnsConflict(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Anchoring"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, want 201", rec.Code)
	}
	rec = doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Anchoring"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func TestCreatePackageWithBadStatusRejected(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodPost, "/api/packages",
		`{"trackingId":"HBL-3001","status":"teleported"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func TestLoginOverHTTP(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"swordfish"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool   `json:"success"`
		Email   string `json:"email"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode login body: %v", err)
	}
	if !body.Success || body.Email != "admin@example.com" || body.Name != "Administrator" {
		t.Fatalf("login body = %+v", body)
	}

	// Wrong password and unknown email must answer identically.
	wrong := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"guess"}`)
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"swordfish"}`)
	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("failure codes = %d/%d, want 401/401", wrong.Code, unknown.Code)
	}
	if wrong.Body.String() != unknown.Body.String() {
		t.Fatalf("failure bodies differ: %s vs %s", wrong.Body.String(), unknown.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestApp(t)

	// A completed request populates the counters before the scrape.
	if rec := doJSON(t, r, http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_http_requests_total") {
		t.Fatalf("metrics exposition missing api_http_requests_total")
	}
}

func TestSettingsEndpoint(t *testing.T) {
	r := newTestApp(t)

	rec := doJSON(t, r, http.MethodGet, "/api/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("settings are not a bare array: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len(settings) = %d, want 4", len(rows))
	}
}

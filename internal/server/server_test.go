package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func siteRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	data := filepath.Join(root, "src", "data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(data, "profilePT.json"), []byte(`{"name":"Jane"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0, Root: t.TempDir()}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, Root: t.TempDir(), AllowAll: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestServesProfileDocuments(t *testing.T) {
	srv := New(Config{Root: siteRoot(t)}, nil)

	req := httptest.NewRequest("GET", "/src/data/profilePT.json", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"name":"Jane"}` {
		t.Errorf("body = %q", got)
	}

	req = httptest.NewRequest("GET", "/src/data/profileEN.json", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing document: expected 404, got %d", w.Code)
	}
}

func TestIndexFallsBackToDefaultPage(t *testing.T) {
	root := siteRoot(t)
	srv := New(Config{Root: root, Index: []byte("<html>default</html>")}, nil)

	get := func() string {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		return w.Body.String()
	}

	if got := get(); got != "<html>default</html>" {
		t.Errorf("without index.html: %q", got)
	}

	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>site</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := get(); !strings.Contains(got, "site") {
		t.Errorf("with index.html: %q", got)
	}
}

func TestRejectsWrites(t *testing.T) {
	srv := New(Config{Root: siteRoot(t)}, nil)

	req := httptest.NewRequest("POST", "/src/data/profilePT.json", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

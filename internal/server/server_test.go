package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rstkit/rst/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	s, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return &App{Store: s}
}

func TestRenderHandlerCachesAndReturnsHTML(t *testing.T) {
	app := newTestApp(t)
	router := app.NewRouter()

	req := httptest.NewRequest("POST", "/render", strings.NewReader("Hello\n"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body = %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp renderResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.HTML != "<p>Hello</p>" {
		t.Errorf("HTML = %q, want %q", resp.HTML, "<p>Hello</p>")
	}
	if resp.Hash == "" {
		t.Error("expected a non-empty hash")
	}
}

func TestRenderHandlerUndefinedSubstitutionStillRenders(t *testing.T) {
	app := newTestApp(t)
	router := app.NewRouter()

	req := httptest.NewRequest("POST", "/render", strings.NewReader("A |missing| here.\n"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// Undefined substitutions degrade to a Problematic node rather than
	// failing the parse, so this should still succeed.
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body = %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestDocHandlerRoundTrip(t *testing.T) {
	app := newTestApp(t)
	router := app.NewRouter()

	hash, err := app.Store.Put("Hello\n", "<p>Hello</p>")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	req := httptest.NewRequest("GET", "/doc/"+hash, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp renderResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.HTML != "<p>Hello</p>" {
		t.Errorf("HTML = %q, want %q", resp.HTML, "<p>Hello</p>")
	}
}

func TestDocHandlerMissingReturnsNotFound(t *testing.T) {
	app := newTestApp(t)
	router := app.NewRouter()

	req := httptest.NewRequest("GET", "/doc/deadbeef", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestDiffHandlerProducesPrettyHTML(t *testing.T) {
	app := newTestApp(t)
	router := app.NewRouter()

	fromHash, err := app.Store.Put("Old\n", "<p>Old</p>")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	toHash, err := app.Store.Put("New\n", "<p>New</p>")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	req := httptest.NewRequest("GET", "/diff?from="+fromHash+"&to="+toHash, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp diffResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.HTML == "" {
		t.Error("expected non-empty diff HTML")
	}
}

func TestDiffHandlerRequiresBothHashes(t *testing.T) {
	app := newTestApp(t)
	router := app.NewRouter()

	req := httptest.NewRequest("GET", "/diff?from=onlyone", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

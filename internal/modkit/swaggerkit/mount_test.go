package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "bulletpoints/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMount_Disabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, false)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMount_Doc(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc.json is not json: %v", err)
	}
	info, _ := spec["info"].(map[string]any)
	if spec["openapi"] != "3.0.3" || info["title"] != "bulletpoints API" {
		t.Fatalf("unexpected spec: %v", spec)
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, rt := range routes {
		node, _ := paths[rt.path].(map[string]any)
		if _, ok := node[lower(rt.method)]; !ok {
			t.Fatalf("%s %s missing from doc", rt.method, rt.path)
		}
	}
	normalize, _ := paths["/bullets/normalize"].(map[string]any)
	if post, _ := normalize["post"].(map[string]any); post["requestBody"] == nil {
		t.Fatal("normalize has no request body")
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("docs root status = %d", rec.Code)
	}
}

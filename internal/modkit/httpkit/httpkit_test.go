package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "bulletpoints/internal/platform/errors"
	pnet "bulletpoints/internal/platform/net"
	phttp "bulletpoints/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type normalizeIn struct {
	Text *string `json:"text" validate:"required"`
}

type normalizeOut struct {
	Text    string `json:"text"`
	Surface string `json:"surface"`
}

// newAPI mounts a bullets shaped module behind the real api stack
func newAPI(t *testing.T, origins ...string) http.Handler {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(r, CommonStack(origins...), func(api Router) {
		api.Route("/bullets", func(b Router) {
			PostJSON(b, "/normalize", func(r *http.Request, in normalizeIn) (any, error) {
				if *in.Text == "boom" {
					panic("rule table broke")
				}
				return normalizeOut{Text: strings.ToUpper(*in.Text), Surface: pnet.Surface(r.Context())}, nil
			})
			Get(b, "/check", func(r *http.Request) (any, error) {
				if !r.URL.Query().Has("text") {
					return nil, perr.WithField(perr.Validationf("text is a required field"), "text")
				}
				return map[string]int{"length": len(r.URL.Query().Get("text"))}, nil
			})
		})
	})
	return r.Mux()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	var env Envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func TestPostJSON(t *testing.T) {
	h := newAPI(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   perr.ErrorCode
		field  string
	}{
		{"ok", `{"text":"six feet"}`, 200, 0, ""},
		{"missing text", `{}`, 400, perr.ErrorCodeValidation, "text"},
		{"not json", `text=six`, 400, perr.ErrorCodeJSON, ""},
		{"unknown key", `{"text":"a","mode":"x"}`, 400, perr.ErrorCodeJSON, ""},
		{"panic", `{"text":"boom"}`, 500, perr.ErrorCodePanic, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, "/api/v1/bullets/normalize", tt.body)
			if rec.Code != tt.status || env.StatusCode != tt.status {
				t.Fatalf("status = %d / %d, want %d (%s)", rec.Code, env.StatusCode, tt.status, rec.Body.String())
			}
			if env.Code != tt.code || env.Field != tt.field {
				t.Fatalf("envelope = %+v", env)
			}
			if env.RequestID == "" {
				t.Fatal("request id missing from envelope")
			}
		})
	}
}

func TestPostJSON_DataCarriesSurface(t *testing.T) {
	_, env := do(t, newAPI(t), http.MethodPost, "/api/v1/bullets/normalize", `{"text":"six feet"}`)
	data, _ := env.Data.(map[string]any)
	if data["text"] != "SIX FEET" || data["surface"] != "api" {
		t.Fatalf("data = %v", env.Data)
	}
}

func TestGet(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodGet, "/api/v1/bullets/check?text=abc", "")
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if data, _ := env.Data.(map[string]any); data["length"] != float64(3) {
		t.Fatalf("data = %v", env.Data)
	}

	rec, env = do(t, h, http.MethodGet, "/api/v1/bullets/check", "")
	if rec.Code != 400 || env.Field != "text" || env.Error != "text is a required field" {
		t.Fatalf("got %d %+v", rec.Code, env)
	}
}

func TestCommonStack(t *testing.T) {
	h := newAPI(t, "https://bullets.example")

	t.Run("trailing slash", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/bullets/check/?text=a", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("no cache", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/bullets/check?text=a", "")
		if rec.Header().Get("Cache-Control") == "" {
			t.Fatal("Cache-Control missing")
		}
	})

	for _, origin := range []string{"https://bullets.example", "https://evil.example"} {
		t.Run("origin "+origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bullets/check?text=a", nil)
			req.Header.Set("Origin", origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			got := rec.Header().Get("Access-Control-Allow-Origin")
			if (origin == "https://bullets.example") != (got == origin) {
				t.Fatalf("Access-Control-Allow-Origin = %q for %s", got, origin)
			}
		})
	}
}

func TestPageStack(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Group(func(g Router) {
		g.Use(PageStack()...)
		g.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<p>" + pnet.Surface(r.Context()) + "</p>"))
		})
		g.Post("/", func(http.ResponseWriter, *http.Request) { panic("template broke") })
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" || rec.Body.String() != "<p>ui</p>" {
		t.Fatalf("got %q headers=%v", rec.Body.String(), rec.Header())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d", rec.Code)
	}
}

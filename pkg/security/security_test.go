package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"career_advisor_backend/internal/config"
	"career_advisor_backend/pkg/security"

	"github.com/gin-gonic/gin"
)

func newRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(security.CORS(cfg), security.Secure())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.String(http.StatusOK, "ui") })
	return r
}

var localFrontend = config.CORSConfig{
	AllowedOrigins:   []string{"http://localhost:5173/"},
	AllowCredentials: true,
	MaxAgeSeconds:    600,
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── CORS ──────────────────────────────────────────────────────────────────

func TestCORS_SimpleRequests(t *testing.T) {
	r := newRouter(localFrontend)

	cases := []struct {
		origin   string
		want     string
		wantCred string
	}{
		{"http://localhost:5173", "http://localhost:5173", "true"},
		{"http://evil.example", "", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		w := serve(r, req)

		if w.Code != http.StatusOK {
			t.Errorf("origin %q: status = %d, want 200", tc.origin, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
			t.Errorf("origin %q: Access-Control-Allow-Origin = %q, want %q", tc.origin, got, tc.want)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != tc.wantCred {
			t.Errorf("origin %q: Access-Control-Allow-Credentials = %q, want %q", tc.origin, got, tc.wantCred)
		}
		if w.Header().Get("Vary") != "Origin" {
			t.Errorf("origin %q: Vary = %q, want Origin", tc.origin, w.Header().Get("Vary"))
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := newRouter(localFrontend)

	cases := []struct {
		name       string
		origin     string
		wantStatus int
	}{
		{"allowed origin", "http://localhost:5173", http.StatusNoContent},
		{"unknown origin", "http://evil.example", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := serve(r, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if tc.wantStatus != http.StatusNoContent {
				return
			}
			if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
			if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
				t.Errorf("Access-Control-Max-Age = %q, want 600", got)
			}
		})
	}
}

func TestCORS_CredentialsDisabled(t *testing.T) {
	r := newRouter(config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)

	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want unset", got)
	}
}

// ── Security headers ──────────────────────────────────────────────────────

func TestSecure_SetsHeaders(t *testing.T) {
	r := newRouter(localFrontend)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "no-referrer",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must only be sent over TLS")
	}
}

func TestSecure_SwaggerHasNoCSP(t *testing.T) {
	r := newRouter(localFrontend)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	if got := w.Header().Get("Content-Security-Policy"); got != "" {
		t.Errorf("Content-Security-Policy = %q on swagger UI, want unset", got)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("swagger UI must still carry nosniff")
	}
}

func TestSecure_HSTSBehindTLSProxy(t *testing.T) {
	r := newRouter(localFrontend)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := serve(r, req)

	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=31536000; includeSubDomains" {
		t.Errorf("Strict-Transport-Security = %q", got)
	}
}

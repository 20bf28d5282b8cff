package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"codecheck/internal/platform/net/middleware"
)

func serve(mw middleware.Middleware, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mw(h).ServeHTTP(rr, req)
	return rr
}

func TestWrappers(t *testing.T) {
	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("a", 4<<10))
	}
	get := func(path string, hdr ...string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		for i := 0; i+1 < len(hdr); i += 2 {
			r.Header.Set(hdr[i], hdr[i+1])
		}
		return r
	}

	cases := []struct {
		name  string
		mw    middleware.Middleware
		req   *http.Request
		check func(*httptest.ResponseRecorder) bool
	}{
		{"compress", middleware.Compress(flate.BestSpeed), get("/", "Accept-Encoding", "gzip"),
			func(rr *httptest.ResponseRecorder) bool { return rr.Header().Get("Content-Encoding") == "gzip" }},
		{"no cache", middleware.NoCache(), get("/"),
			func(rr *httptest.ResponseRecorder) bool { return rr.Header().Get("Cache-Control") != "" }},
		{"heartbeat", middleware.Heartbeat("/ping"), get("/ping"),
			func(rr *httptest.ResponseRecorder) bool { return rr.Code == http.StatusOK && rr.Body.String() == "." }},
		{"timeout passes fast handlers", middleware.Timeout(time.Second), get("/"),
			func(rr *httptest.ResponseRecorder) bool { return rr.Code == http.StatusOK }},
		{"real ip", middleware.RealIP(), get("/", "X-Real-IP", "203.0.113.9"),
			func(rr *httptest.ResponseRecorder) bool { return rr.Code == http.StatusOK }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rr := serve(tc.mw, ok, tc.req); !tc.check(rr) {
				t.Fatalf("unexpected response: %d %v", rr.Code, rr.Header())
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://example.com"}})
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Telegram-Bot-Api-Secret-Token")

	rr := serve(cors, func(w http.ResponseWriter, _ *http.Request) {}, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Fatalf("origin not allowed: %v", rr.Header())
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" || rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatalf("defaults not applied: %v", rr.Header())
	}
}

func TestRequestIDThenLogContext(t *testing.T) {
	var seen string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-9")
	h := func(_ http.ResponseWriter, r *http.Request) { seen = chimw.GetReqID(r.Context()) }
	serve(middleware.RequestID(), middleware.LogContext(http.HandlerFunc(h)).ServeHTTP, req)
	if seen != "rid-9" {
		t.Fatalf("request id = %q, want rid-9", seen)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" || w.Header().Get(requestIDHeader) != "abc-123" {
		t.Errorf("request id not propagated: body %q header %q", w.Body.String(), w.Header().Get(requestIDHeader))
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Errorf("logged status = %v", got)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("no request id assigned")
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("preflight = %d %v", w.Code, w.Header())
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDHonorsInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-supplied-id")
	r.ServeHTTP(w, req)

	if seen != "client-supplied-id" {
		t.Fatalf("expected inbound id to be kept, got %q", seen)
	}
	if got := w.Header().Get("X-Request-Id"); got != "client-supplied-id" {
		t.Fatalf("expected id echoed in response header, got %q", got)
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get("X-Request-Id")
	if id == "" {
		t.Fatal("expected a generated request id")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID request id, got %q: %v", id, err)
	}
}

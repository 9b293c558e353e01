package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/config"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}
	for _, tt := range tests {
		if got := bearerToken(tt.header); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestDisabledValidatorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	v, err := NewValidator(context.Background(), &config.Config{AuthEnabled: false}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	if !v.Ready() {
		t.Fatalf("disabled validator should report ready")
	}

	router := gin.New()
	router.Use(v.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	v.Close()
}

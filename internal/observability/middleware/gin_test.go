package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KasumiMercury/park-live-board/internal/observability/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(Gin(GinConfig{
		SkipPaths:  []string{"/health"},
		Module:     logging.Module("test"),
		TracerName: "test",
	}))
	r.Use(PanicRecoveryGin())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/request-id", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestIDFromContext(c.Request.Context()))
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestGin_RequestID(t *testing.T) {
	r := newRouter()
	incoming := uuid.NewString()

	tests := []struct {
		name       string
		header     string
		wantEchoed bool
	}{
		{"valid header kept", incoming, true},
		{"missing header generated", "", false},
		{"invalid header replaced", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/request-id", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Body.String()
			if got != w.Header().Get(RequestIDHeader) {
				t.Errorf("context request id %q differs from response header %q", got, w.Header().Get(RequestIDHeader))
			}
			if tt.wantEchoed && got != tt.header {
				t.Errorf("request id = %q, want %q", got, tt.header)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("request id %q is not a uuid", got)
			}
		})
	}
}

func TestGin_SkipPaths(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Header().Get(RequestIDHeader) != "" {
		t.Error("skipped path should not receive a request id")
	}
}

func TestPanicRecoveryGin(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

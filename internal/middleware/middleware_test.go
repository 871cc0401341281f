package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timetracker/internal/middleware"
	"timetracker/pkg/log"
)

func newEngine(mw middleware.Middleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	handlers := append(extra, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	r.POST("/unlock", handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/unlock", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid header, got %q", id)
		}
		if w.Body.String() != id {
			t.Errorf("context id %q != header id %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		want := uuid.NewString()
		req := httptest.NewRequest(http.MethodPost, "/unlock", nil)
		req.Header.Set(middleware.HeaderRequestID, want)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("garbage replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/unlock", nil)
		req.Header.Set(middleware.HeaderRequestID, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got == "<script>" {
			t.Error("untrusted id was echoed")
		}
	})
}

func TestRateLimit(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{UnlockRatePerMin: 30})
	r := newEngine(mw, mw.RateLimit())

	// burst is 30/10 = 3
	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/unlock", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	for i, code := range codes[:3] {
		if code != http.StatusOK {
			t.Errorf("request %d: expected 200, got %d", i, code)
		}
	}
	if codes[4] != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %v", codes)
	}

	req := httptest.NewRequest(http.MethodPost, "/unlock", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other clients must not share the bucket, got %d", w.Code)
	}
}

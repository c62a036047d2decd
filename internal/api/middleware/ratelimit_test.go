package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func invokeRateLimit(t *testing.T, limiter Limiter) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	rec := invokeRateLimit(t, limiter)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "203.0.113.7" {
		t.Fatalf("expected limiter keyed by client ip, got %v", limiter.keys)
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	rec := invokeRateLimit(t, &stubLimiter{allowed: false})

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	rec := invokeRateLimit(t, &stubLimiter{err: errors.New("redis down")})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when limiter errors, got %d", rec.Code)
	}
}

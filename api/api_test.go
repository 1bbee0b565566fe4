package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cafejs/cafejs/api"
	"github.com/cafejs/cafejs/core/sessions"
	"github.com/cafejs/cafejs/rate"
	"github.com/sirupsen/logrus"
)

// brokenStore fails every lookup, standing in for an unreachable session
// backend.
type brokenStore struct{}

func (brokenStore) Create(ctx context.Context, userID int) (string, error) {
	return "", errors.New("session backend unavailable")
}

func (brokenStore) Resolve(ctx context.Context, token string) (int, bool, error) {
	return 0, false, errors.New("session backend unavailable")
}

func TestSessionStoreFailureIsServerError(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mux := api.APIMux(api.APIConfig{
		Log:        logger,
		DB:         nil,
		Sessions:   brokenStore{},
		LoginLimit: rate.NewLimiter(100, 100, rate.Every(time.Microsecond)),
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: "some-token"})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a failing session store, got %d", w.Code)
	}

	body := w.Body.String()
	if body == "" {
		t.Fatal("expected a generic error body, got an empty response")
	}
	if strings.Contains(body, "unavailable") {
		t.Fatalf("response leaks internal error detail: %q", body)
	}
}

// Requests without a session cookie never touch the store and must pass
// through anonymously.
func TestAnonymousRequestSkipsSessionStore(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mux := api.APIMux(api.APIConfig{
		Log:        logger,
		DB:         nil,
		Sessions:   brokenStore{},
		LoginLimit: rate.NewLimiter(100, 100, rate.Every(time.Microsecond)),
	})

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for the login form, got %d", w.Code)
	}
}

package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testKey, time.Hour)
	userID := uuid.New()
	sessionID := uuid.New()

	token, expires, err := issuer.Issue(userID, sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Error("expected expiry in the future")
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := claims.UserID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Errorf("expected user %s, got %s", userID, got)
	}
	if claims.SessionID != sessionID.String() {
		t.Errorf("expected session %s, got %s", sessionID, claims.SessionID)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testKey, -time.Minute)
	token, _, err := issuer.Issue(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := issuer.Parse(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	issuer := NewTokenIssuer(testKey, time.Hour)
	token, _, err := issuer.Issue(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewTokenIssuer([]byte("another-key-another-key-another!"), time.Hour)
	if _, err := other.Parse(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

type stubVerifier struct {
	userID    uuid.UUID
	sessionID uuid.UUID
	err       error
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (uuid.UUID, uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, uuid.Nil, s.err
	}
	return s.userID, s.sessionID, nil
}

func TestMiddleware_SetsContext(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	sessionID := uuid.New()
	verifier := &stubVerifier{userID: userID, sessionID: sessionID}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		got, ok := UserIDFromContext(c.Request().Context())
		if !ok || got != userID {
			t.Errorf("expected user %s in context, got %v", userID, got)
		}
		sid, ok := SessionIDFromContext(c.Request().Context())
		if !ok || sid != sessionID {
			t.Errorf("expected session %s in context, got %v", sessionID, sid)
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := Middleware(verifier, nil)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return nil }
	err := Middleware(&stubVerifier{}, nil)(handler)(c)
	if err == nil {
		t.Fatal("expected error for missing header")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return nil }
	if err := Middleware(&stubVerifier{}, nil)(handler)(c); err == nil {
		t.Error("expected error for malformed header")
	}
}

func TestMiddleware_VerifierRejects(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer revoked")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := &stubVerifier{err: fmt.Errorf("session revoked")}
	handler := func(c echo.Context) error { return nil }
	err := Middleware(verifier, nil)(handler)(c)
	if err == nil {
		t.Fatal("expected error for revoked session")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_SkipperBypasses(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/health")

	skipper := func(c echo.Context) bool { return c.Path() == "/health" }
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	if err := Middleware(&stubVerifier{err: fmt.Errorf("no")}, skipper)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

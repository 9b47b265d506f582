package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dermacare/dermacare/internal/platform/auth"
)

func newTestHandler() (*Handler, *Service) {
	issuer := auth.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	svc := NewService(newMockUserRepo(), newMockSessionRepo(), issuer, NewBroadcaster(), nil)
	return NewHandler(svc), svc
}

func jsonRequest(method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, sessionID uuid.UUID) echo.Context {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.SessionIDKey, sessionID)
	return e.NewContext(req.WithContext(ctx), rec)
}

func TestHandler_Register(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req, rec := jsonRequest(http.MethodPost, "/auth/register",
		`{"email":"a@example.com","password":"correct-horse","display_name":"A"}`)
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" || resp.User == nil {
		t.Error("expected token and user in response")
	}
}

func TestHandler_Register_Conflict(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	if _, err := svc.SignUp(context.Background(), "a@example.com", "correct-horse", "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, rec := jsonRequest(http.MethodPost, "/auth/register",
		`{"email":"a@example.com","password":"correct-horse","display_name":"A"}`)
	c := e.NewContext(req, rec)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	if _, err := svc.SignUp(context.Background(), "a@example.com", "correct-horse", "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, rec := jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"a@example.com","password":"battery-staple"}`)
	c := e.NewContext(req, rec)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_Me(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	resp, err := svc.SignUp(context.Background(), "a@example.com", "correct-horse", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, resp.User.ID, uuid.New())

	if err := h.Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user UserAccount
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Errorf("unexpected email %q", user.Email)
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Error("password hash must not appear in responses")
	}
}

func TestHandler_Me_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_UpdateLocation(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	resp, err := svc.SignUp(context.Background(), "a@example.com", "correct-horse", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, rec := jsonRequest(http.MethodPut, "/auth/me/location",
		`{"city":"Springfield","state":"Illinois"}`)
	c := authedContext(e, req, rec, resp.User.ID, uuid.New())

	if err := h.UpdateLocation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user UserAccount
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.City == nil || *user.City != "Springfield" {
		t.Errorf("expected city saved, got %v", user.City)
	}
}

func TestHandler_UpdateLocation_Partial(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	resp, err := svc.SignUp(context.Background(), "a@example.com", "correct-horse", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, rec := jsonRequest(http.MethodPut, "/auth/me/location", `{"city":"Springfield"}`)
	c := authedContext(e, req, rec, resp.User.ID, uuid.New())

	err = h.UpdateLocation(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Logout(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	resp, err := svc.SignUp(context.Background(), "a@example.com", "correct-horse", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	userID, sessionID, err := svc.VerifyToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, userID, sessionID)

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, _, err := svc.VerifyToken(context.Background(), resp.Token); err == nil {
		t.Error("expected token rejected after logout")
	}
}

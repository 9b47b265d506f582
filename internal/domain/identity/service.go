package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dermacare/dermacare/internal/platform/auth"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLocationIncomplete = errors.New("city and state must both be provided")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// TxRunner executes fn atomically. Production wiring passes a closure over
// db.WithTx; a nil runner executes fn directly.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	users    UserRepository
	sessions SessionRepository
	issuer   *auth.TokenIssuer
	events   *Broadcaster
	runTx    TxRunner
}

func NewService(users UserRepository, sessions SessionRepository, issuer *auth.TokenIssuer, events *Broadcaster, runTx TxRunner) *Service {
	if runTx == nil {
		runTx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	return &Service{users: users, sessions: sessions, issuer: issuer, events: events, runTx: runTx}
}

// Events exposes the session event broadcaster.
func (s *Service) Events() *Broadcaster {
	return s.events
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// -- Registration and sign-in --

// SignUp creates a new account and opens its first session.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &UserAccount{
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resp, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.events.Publish(SessionEvent{Type: EventSignedIn, UserID: user.ID, User: user})
	return resp, nil
}

// SignIn verifies credentials and opens a session. Any prior sessions for
// the user are revoked so a token can only be live on one device at a time.
func (s *Service) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	var resp *AuthResponse
	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.sessions.DeleteByUser(ctx, user.ID); err != nil {
			return err
		}
		resp, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(SessionEvent{Type: EventSignedIn, UserID: user.ID, User: user})
	return resp, nil
}

func (s *Service) openSession(ctx context.Context, user *UserAccount) (*AuthResponse, error) {
	sessionID := uuid.New()
	token, expires, err := s.issuer.Issue(user.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	sess := &Session{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: expires,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token, ExpiresAt: expires}, nil
}

// SignOut revokes the session and notifies subscribers.
func (s *Service) SignOut(ctx context.Context, userID, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.events.Publish(SessionEvent{Type: EventSignedOut, UserID: userID})
	return nil
}

// -- Account access --

func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*UserAccount, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateLocation stores the saved city/state pair. Both fields are required;
// a partial location is rejected so directory lookups never see half an
// address.
func (s *Service) UpdateLocation(ctx context.Context, userID uuid.UUID, city, state string) (*UserAccount, error) {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	if city == "" || state == "" {
		return nil, ErrLocationIncomplete
	}

	if err := s.users.UpdateLocation(ctx, userID, city, state); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.events.Publish(SessionEvent{Type: EventLocationUpdated, UserID: userID, User: user})
	return user, nil
}

// -- Token verification --

// VerifyToken implements auth.SessionVerifier. A token is only good while
// its session row exists, so sign-out and sign-in-elsewhere revoke it
// immediately regardless of JWT expiry.
func (s *Service) VerifyToken(ctx context.Context, token string) (uuid.UUID, uuid.UUID, error) {
	claims, err := s.issuer.Parse(token)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return uuid.Nil, uuid.Nil, auth.ErrTokenInvalid
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, auth.ErrTokenInvalid
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, auth.ErrTokenInvalid
	}
	if sess.UserID != userID || sess.TokenHash != hashToken(token) {
		return uuid.Nil, uuid.Nil, auth.ErrTokenInvalid
	}
	if sess.Expired(time.Now()) {
		return uuid.Nil, uuid.Nil, auth.ErrTokenExpired
	}

	return userID, sessionID, nil
}

// PurgeExpiredSessions removes stale session rows. Called periodically from
// the server loop.
func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx)
}

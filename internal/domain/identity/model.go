package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserAccount maps to the user_account table.
type UserAccount struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	City         *string   `db:"city" json:"city,omitempty"`
	State        *string   `db:"state" json:"state,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// HasSavedLocation reports whether the account carries a usable saved
// location. Both fields must be present; a lone city or state is treated as
// no location at all.
func (u *UserAccount) HasSavedLocation() bool {
	return u.City != nil && strings.TrimSpace(*u.City) != "" &&
		u.State != nil && strings.TrimSpace(*u.State) != ""
}

// Session maps to the session table. TokenHash is a SHA-256 digest of the
// bearer token; the token itself is never stored.
type Session struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	TokenHash string    `db:"token_hash" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Credentials is the register/login request body.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// LocationUpdate is the saved-location request body.
type LocationUpdate struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User      *UserAccount `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *UserAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*UserAccount, error)
	GetByEmail(ctx context.Context, email string) (*UserAccount, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, city, state string) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

package scan

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *ScanRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*ScanRecord, error)
	// ListByUser returns the user's records newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ScanRecord, int, error)
	// Delete removes exactly one record. The record must belong to userID;
	// other users' rows are never touched.
	Delete(ctx context.Context, id, userID uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
}

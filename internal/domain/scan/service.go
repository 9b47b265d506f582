package scan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dermacare/dermacare/internal/platform/blobstore"
	"github.com/dermacare/dermacare/internal/platform/telemetry"
)

var ErrScanNotFound = errors.New("scan not found")

type Service struct {
	repo      Repository
	blobs     blobstore.Store
	predictor Predictor
	log       zerolog.Logger
	metrics   *telemetry.Provider
	now       func() time.Time
}

func NewService(repo Repository, blobs blobstore.Store, predictor Predictor, log zerolog.Logger, metrics *telemetry.Provider) *Service {
	return &Service{
		repo:      repo,
		blobs:     blobs,
		predictor: predictor,
		log:       log,
		metrics:   metrics,
		now:       time.Now,
	}
}

// objectKey namespaces uploads per user with a millisecond timestamp, the
// same shape the stored public URLs have always had.
func (s *Service) objectKey(userID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%d%s", userID, s.now().UnixMilli(), ext)
}

// Analyze runs the full workflow for one photo: store the bytes, call the
// model, persist the record. The object must be stored (and its URL known)
// before the insert. A failed upload aborts everything; a failed prediction
// aborts the insert; a failed insert is NOT compensated — the uploaded object
// stays behind orphaned. That matches the system this replaces and keeps the
// stored URL immutable once a record references it.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, filename string, content []byte) (*AnalyzeResponse, error) {
	contentType := sniffContentType(content)

	key := s.objectKey(userID, filename)
	obj, err := s.blobs.Upload(ctx, key, contentType, bytes.NewReader(content))
	if err != nil {
		s.countAnalyze("error")
		return nil, fmt.Errorf("storing photo: %w", err)
	}

	prediction, err := s.predictor.Predict(ctx, filename, content)
	if err != nil {
		s.countAnalyze("error")
		return nil, err
	}

	record := &ScanRecord{
		UserID:      userID,
		ImageURL:    obj.PublicURL,
		Disease:     prediction.Disease,
		Confidence:  prediction.Confidence,
		Description: prediction.Description,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.countAnalyze("error")
		s.log.Error().Err(err).Str("key", key).Msg("scan insert failed; uploaded object left orphaned")
		return nil, fmt.Errorf("saving scan record: %w", err)
	}

	s.countAnalyze("ok")
	return &AnalyzeResponse{Record: record, Prediction: prediction}, nil
}

// History returns the user's scans newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ScanRecord, int, error) {
	items, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.countOp("list", "error")
		return nil, 0, err
	}
	s.countOp("list", "ok")
	return items, total, nil
}

// Get returns one record, scoped to its owner.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*ScanRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, ErrScanNotFound
	}
	return rec, nil
}

// Delete removes one record. The stored image object is intentionally left
// in place.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		s.countOp("delete", "error")
		return err
	}
	s.countOp("delete", "ok")
	return nil
}

// CountAll reports the total number of stored scans, for the health gauges.
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

func (s *Service) countAnalyze(outcome string) { s.countOp("analyze", outcome) }

func (s *Service) countOp(op, outcome string) {
	if s.metrics != nil {
		s.metrics.ScanOperationCounter(op, outcome)
	}
}

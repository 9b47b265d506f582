package scan

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecord maps to the scans table. Confidence is a percentage in the
// 0-100 range, stored as the inference service reports it.
type ScanRecord struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Disease     string    `db:"disease" json:"disease"`
	Confidence  float64   `db:"confidence" json:"confidence"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// PredictionResult is the inference service's answer for one photo. It is
// immutable once received; Severity and Recommendations are transient display
// data and are not persisted.
type PredictionResult struct {
	Disease         string   `json:"disease"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	Severity        Severity `json:"severity,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// AnalyzeResponse is returned by the analyze endpoint: the stored record plus
// the transient prediction detail.
type AnalyzeResponse struct {
	Record     *ScanRecord       `json:"record"`
	Prediction *PredictionResult `json:"prediction"`
}

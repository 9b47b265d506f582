package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dermacare/dermacare/internal/platform/auth"
	"github.com/dermacare/dermacare/internal/platform/blobstore"
)

func newTestHandler(predictor Predictor) (*Handler, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo, blobstore.NewMemoryStore(), predictor, zerolog.Nop(), nil)
	return NewHandler(svc, 10<<20), repo
}

func multipartUpload(t *testing.T, filename string, content []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/scans", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return req, httptest.NewRecorder()
}

func scanContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID) echo.Context {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return e.NewContext(req.WithContext(ctx), rec)
}

func TestHandler_Analyze(t *testing.T) {
	h, repo := newTestHandler(&stubPredictor{result: eczemaPrediction()})
	e := echo.New()

	req, rec := multipartUpload(t, "lesion.png", pngBytes)
	c := scanContext(e, req, rec, uuid.New())

	if err := h.Analyze(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Record.Disease != "Eczema" {
		t.Errorf("unexpected record %+v", resp.Record)
	}
	if len(repo.records) != 1 {
		t.Errorf("expected one stored record, got %d", len(repo.records))
	}
}

func TestHandler_Analyze_RejectsNonImage(t *testing.T) {
	h, repo := newTestHandler(&stubPredictor{result: eczemaPrediction()})
	e := echo.New()

	req, rec := multipartUpload(t, "notes.png", []byte("just some plain text"))
	c := scanContext(e, req, rec, uuid.New())

	err := h.Analyze(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("rejected upload must not create a record")
	}
}

func TestHandler_Analyze_MissingFile(t *testing.T) {
	h, _ := newTestHandler(&stubPredictor{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/scans", nil)
	rec := httptest.NewRecorder()
	c := scanContext(e, req, rec, uuid.New())

	err := h.Analyze(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Analyze_PredictionFailure(t *testing.T) {
	h, _ := newTestHandler(&stubPredictor{err: ErrPredictionFailed})
	e := echo.New()

	req, rec := multipartUpload(t, "lesion.png", pngBytes)
	c := scanContext(e, req, rec, uuid.New())

	err := h.Analyze(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %v", err)
	}
}

func TestHandler_List(t *testing.T) {
	h, repo := newTestHandler(&stubPredictor{})
	e := echo.New()

	userID := uuid.New()
	_ = repo.Create(context.Background(), &ScanRecord{UserID: userID, Disease: "Eczema"})
	_ = repo.Create(context.Background(), &ScanRecord{UserID: uuid.New(), Disease: "Acne"})

	req := httptest.NewRequest(http.MethodGet, "/scans", nil)
	rec := httptest.NewRecorder()
	c := scanContext(e, req, rec, userID)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data  []*ScanRecord `json:"data"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Errorf("expected only the caller's records, got %+v", resp)
	}
}

func TestHandler_Delete_InvalidID(t *testing.T) {
	h, _ := newTestHandler(&stubPredictor{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodDelete, "/scans/abc", nil)
	rec := httptest.NewRecorder()
	c := scanContext(e, req, rec, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, repo := newTestHandler(&stubPredictor{})
	e := echo.New()

	userID := uuid.New()
	rec1 := &ScanRecord{UserID: userID, Disease: "Eczema"}
	_ = repo.Create(context.Background(), rec1)

	req := httptest.NewRequest(http.MethodDelete, "/scans/"+rec1.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := scanContext(e, req, rec, userID)
	c.SetParamNames("id")
	c.SetParamValues(rec1.ID.String())

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(repo.records) != 0 {
		t.Error("expected record deleted")
	}
}

package scan

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestInferenceClient_Predict(t *testing.T) {
	var gotPath, gotField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		file, header, err := r.FormFile("file")
		if err == nil {
			gotField = header.Filename
			_, _ = io.ReadAll(file)
			file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"disease": "Eczema",
			"confidence": 87.3,
			"description": "Chronic inflammatory skin condition.",
			"severity": "moderate",
			"recommendations": ["Keep the area moisturised"]
		}`))
	}))
	defer srv.Close()

	client := NewInferenceClient(srv.URL, srv.Client(), zerolog.Nop(), nil)
	result, err := client.Predict(context.Background(), "lesion.png", pngBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/predict" {
		t.Errorf("expected POST /predict, got %q", gotPath)
	}
	if gotField != "lesion.png" {
		t.Errorf("expected multipart file field, got %q", gotField)
	}
	if result.Disease != "Eczema" || result.Confidence != 87.3 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Severity != SeverityModerate {
		t.Errorf("expected moderate severity, got %q", result.Severity)
	}
	if len(result.Recommendations) != 1 {
		t.Errorf("expected recommendations carried through, got %v", result.Recommendations)
	}
}

func TestInferenceClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewInferenceClient(srv.URL, srv.Client(), zerolog.Nop(), nil)
	_, err := client.Predict(context.Background(), "lesion.png", pngBytes)
	if !errors.Is(err, ErrPredictionFailed) {
		t.Errorf("expected ErrPredictionFailed, got %v", err)
	}
}

func TestInferenceClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewInferenceClient(srv.URL, srv.Client(), zerolog.Nop(), nil)
	_, err := client.Predict(context.Background(), "lesion.png", pngBytes)
	if !errors.Is(err, ErrPredictionFailed) {
		t.Errorf("expected ErrPredictionFailed, got %v", err)
	}
}

func TestInferenceClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse everything

	client := NewInferenceClient(srv.URL, nil, zerolog.Nop(), nil)
	_, err := client.Predict(context.Background(), "lesion.png", pngBytes)
	if !errors.Is(err, ErrPredictionFailed) {
		t.Errorf("expected ErrPredictionFailed, got %v", err)
	}
}

func TestInferenceClient_DefaultSeverity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"disease":"Psoriasis","confidence":61.2,"description":"d"}`))
	}))
	defer srv.Close()

	client := NewInferenceClient(srv.URL, srv.Client(), zerolog.Nop(), nil)
	result, err := client.Predict(context.Background(), "lesion.png", pngBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Severity != SeverityMild {
		t.Errorf("expected mild default, got %q", result.Severity)
	}
}

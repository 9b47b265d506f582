package directory

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(places *stubPlaces, geo *stubGeocoder, nearby *stubNearby) *echo.Echo {
	e := echo.New()
	h := NewHandler(newTestService(places, geo, nearby))
	h.RegisterRoutes(e.Group(""))
	return e
}

func TestHandler_VerifiedDoctors(t *testing.T) {
	places := &stubPlaces{recs: []HospitalRecommendation{{Name: "Glow Skin Clinic", Address: "12 MG Road", Rating: 4.2, MapURL: "https://maps.example/p1"}}}
	e := newTestServer(places, &stubGeocoder{loc: Coordinates{Lat: 19, Lng: 72}}, &stubNearby{})

	req := httptest.NewRequest(http.MethodGet, "/verified-doctors?city=Mumbai&state=Maharashtra", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []HospitalRecommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Glow Skin Clinic" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestHandler_VerifiedDoctors_CoordinatesWin(t *testing.T) {
	places := &stubPlaces{}
	geo := &stubGeocoder{}
	e := newTestServer(places, geo, &stubNearby{})

	req := httptest.NewRequest(http.MethodGet, "/verified-doctors?lat=19.07&lng=72.87&city=Mumbai&state=Maharashtra", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if geo.calls != 0 {
		t.Errorf("expected coordinates to bypass geocoding, got %d calls", geo.calls)
	}
	if places.calls != 1 {
		t.Errorf("expected one places search, got %d", places.calls)
	}
}

func TestHandler_VerifiedDoctors_UpstreamFailureIs200Empty(t *testing.T) {
	places := &stubPlaces{err: errors.New("quota exceeded")}
	e := newTestServer(places, &stubGeocoder{loc: Coordinates{Lat: 19, Lng: 72}}, &stubNearby{})

	req := httptest.NewRequest(http.MethodGet, "/verified-doctors?city=Mumbai&state=Maharashtra", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even on upstream failure, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHandler_NearbyDermatologists(t *testing.T) {
	nearby := &stubNearby{results: []NearbyResult{{Name: "Sunrise Skin Hospital", DistanceKM: 1.2, Type: "Dermatology Department"}}}
	e := newTestServer(&stubPlaces{}, &stubGeocoder{loc: Coordinates{Lat: 19, Lng: 72}}, nearby)

	req := httptest.NewRequest(http.MethodGet, "/nearby-dermatologists?city=Mumbai&state=Maharashtra&radius_km=5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if nearby.gotRadius != 5 {
		t.Errorf("expected radius_km honoured, got %v", nearby.gotRadius)
	}
	var got []NearbyResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 1 || got[0].Type != "Dermatology Department" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestHandler_NearbyDermatologists_BadRadiusFallsBack(t *testing.T) {
	nearby := &stubNearby{}
	e := newTestServer(&stubPlaces{}, &stubGeocoder{}, nearby)

	req := httptest.NewRequest(http.MethodGet, "/nearby-dermatologists?city=Mumbai&state=Maharashtra&radius_km=garbage", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if nearby.gotRadius != DefaultNearbyRadiusKM {
		t.Errorf("expected default radius, got %v", nearby.gotRadius)
	}
}

func TestHandler_NearbyDermatologists_GeocodeFailureIs200Empty(t *testing.T) {
	e := newTestServer(&stubPlaces{}, &stubGeocoder{err: ErrLocationNotFound}, &stubNearby{})

	req := httptest.NewRequest(http.MethodGet, "/nearby-dermatologists?city=Nowhere&state=Nostate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even on geocode failure, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHandler_States(t *testing.T) {
	e := newTestServer(&stubPlaces{}, &stubGeocoder{}, &stubNearby{})

	req := httptest.NewRequest(http.MethodGet, "/locations/states", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var states []string
	if err := json.Unmarshal(rec.Body.Bytes(), &states); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(states) != len(stateCities) {
		t.Errorf("expected all %d states, got %d", len(stateCities), len(states))
	}
}

func TestHandler_Cities(t *testing.T) {
	e := newTestServer(&stubPlaces{}, &stubGeocoder{}, &stubNearby{})

	req := httptest.NewRequest(http.MethodGet, "/locations/cities?state=Goa", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var cities []string
	if err := json.Unmarshal(rec.Body.Bytes(), &cities); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(cities) == 0 {
		t.Error("expected cities for Goa")
	}

	req = httptest.NewRequest(http.MethodGet, "/locations/cities?state=Atlantis", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("expected empty JSON array for unknown state, got %q", body)
	}
}

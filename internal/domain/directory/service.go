package directory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dermacare/dermacare/internal/platform/telemetry"
)

// DefaultNearbyRadiusKM applies when the caller sends no radius.
const DefaultNearbyRadiusKM = 20

type placesSearcher interface {
	SearchDermatology(ctx context.Context, loc Coordinates) ([]HospitalRecommendation, error)
}

type locationGeocoder interface {
	Geocode(ctx context.Context, city, state string) (Coordinates, error)
}

type nearbyFinder interface {
	NearbyCare(ctx context.Context, loc Coordinates, radiusKM float64) ([]NearbyResult, error)
}

// DoctorsQuery carries the caller's location, either as a device fix or as
// a saved city/state pair. Coordinates win when both are present.
type DoctorsQuery struct {
	Lat   *float64
	Lng   *float64
	City  string
	State string
}

// Service answers directory lookups. Every method returns an empty,
// non-nil slice on failure; lookup errors are logged and counted, never
// propagated, so a flaky upstream cannot break the caller's flow.
type Service struct {
	places   placesSearcher
	geocoder locationGeocoder
	nearby   nearbyFinder
	log      zerolog.Logger
	metrics  *telemetry.Provider
}

// NewService wires the directory lookups. metrics may be nil.
func NewService(places placesSearcher, geocoder locationGeocoder, nearby nearbyFinder, log zerolog.Logger, metrics *telemetry.Provider) *Service {
	return &Service{
		places:   places,
		geocoder: geocoder,
		nearby:   nearby,
		log:      log,
		metrics:  metrics,
	}
}

// VerifiedDoctors resolves the query to coordinates and searches the places
// index. A query with neither a fix nor a saved location yields no results.
func (s *Service) VerifiedDoctors(ctx context.Context, q DoctorsQuery) []HospitalRecommendation {
	loc, ok := s.resolve(ctx, q)
	if !ok {
		return []HospitalRecommendation{}
	}

	recs, err := s.places.SearchDermatology(ctx, loc)
	if err != nil {
		s.log.Warn().Err(err).Msg("places search failed")
		s.countLookup("places", "failed")
		return []HospitalRecommendation{}
	}
	s.countLookup("places", "ok")
	if recs == nil {
		recs = []HospitalRecommendation{}
	}
	return recs
}

func (s *Service) resolve(ctx context.Context, q DoctorsQuery) (Coordinates, bool) {
	if q.Lat != nil && q.Lng != nil {
		return Coordinates{Lat: *q.Lat, Lng: *q.Lng}, true
	}
	if q.City == "" || q.State == "" {
		return Coordinates{}, false
	}
	loc, err := s.geocoder.Geocode(ctx, q.City, q.State)
	if err != nil {
		s.log.Warn().Err(err).Str("city", q.City).Str("state", q.State).Msg("geocode failed")
		s.countLookup("geocode", "failed")
		return Coordinates{}, false
	}
	return loc, true
}

// NearbyDermatologists geocodes the city/state pair and queries
// OpenStreetMap for care facilities within radiusKM.
func (s *Service) NearbyDermatologists(ctx context.Context, city, state string, radiusKM float64) []NearbyResult {
	if city == "" || state == "" {
		return []NearbyResult{}
	}
	if radiusKM <= 0 {
		radiusKM = DefaultNearbyRadiusKM
	}

	loc, err := s.geocoder.Geocode(ctx, city, state)
	if err != nil {
		s.log.Warn().Err(err).Str("city", city).Str("state", state).Msg("geocode failed")
		s.countLookup("geocode", "failed")
		return []NearbyResult{}
	}

	results, err := s.nearby.NearbyCare(ctx, loc, radiusKM)
	if err != nil {
		s.log.Warn().Err(err).Msg("nearby care lookup failed")
		s.countLookup("overpass", "failed")
		return []NearbyResult{}
	}
	s.countLookup("overpass", "ok")
	if results == nil {
		results = []NearbyResult{}
	}
	return results
}

func (s *Service) countLookup(source, outcome string) {
	if s.metrics != nil {
		s.metrics.DirectoryLookupCounter(source, outcome)
	}
}

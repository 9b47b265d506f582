package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// searchRadiusMeters is the nearby-search radius for the commercial places
// index.
const searchRadiusMeters = 7000

// dermatologyKeywords drive one nearby-search each. The Hindi keyword
// matters for listings in India that carry no English name.
var dermatologyKeywords = []string{
	"dermatology",
	"skin clinic",
	"skin hospital",
	"dermatologist",
	"चर्म रोग",
	"skin care clinic",
	"cosmetic clinic",
}

// nameFilterTerms is the final gate: a place survives only when its name
// mentions one of these, whatever keyword surfaced it.
var nameFilterTerms = []string{"derma", "skin", "cosmetic", "चर्म"}

// PlacesClient queries a Google-Places-style nearby-search endpoint for
// dermatology hospitals and clinics.
type PlacesClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

func NewPlacesClient(baseURL, apiKey string, client *http.Client, log zerolog.Logger) *PlacesClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &PlacesClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		log:     log,
	}
}

type placesSearchResponse struct {
	Results []placeRow `json:"results"`
	Status  string     `json:"status"`
}

type placeRow struct {
	PlaceID      string      `json:"place_id"`
	Name         string      `json:"name"`
	Vicinity     string      `json:"vicinity"`
	Rating       json.Number `json:"rating"`
	OpeningHours *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours"`
}

// SearchDermatology runs one nearby-search per keyword, deduplicates the
// union by place id, keeps only dermatology-looking names, and returns the
// survivors sorted by rating, best first. An unrated or unparsable rating
// sorts as zero.
func (p *PlacesClient) SearchDermatology(ctx context.Context, loc Coordinates) ([]HospitalRecommendation, error) {
	collected := make(map[string]placeRow)
	for _, keyword := range dermatologyKeywords {
		rows, err := p.nearbySearch(ctx, loc, keyword)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if row.PlaceID == "" {
				continue
			}
			collected[row.PlaceID] = row
		}
	}

	out := make([]HospitalRecommendation, 0, len(collected))
	for id, row := range collected {
		if !dermatologyName(row.Name) {
			continue
		}
		rec := HospitalRecommendation{
			Name:    row.Name,
			Address: row.Vicinity,
			Rating:  parseRating(row.Rating),
			MapURL:  "https://www.google.com/maps/place/?q=place_id:" + id,
		}
		if row.OpeningHours != nil {
			rec.OpenNow = row.OpeningHours.OpenNow
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

func (p *PlacesClient) nearbySearch(ctx context.Context, loc Coordinates, keyword string) ([]placeRow, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", loc.Lat, loc.Lng))
	q.Set("radius", strconv.Itoa(searchRadiusMeters))
	q.Set("type", "hospital")
	q.Set("keyword", keyword)
	q.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var wire placesSearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding places response: %w", err)
	}
	if wire.Status != "" && wire.Status != "OK" && wire.Status != "ZERO_RESULTS" {
		p.log.Warn().Str("status", wire.Status).Str("keyword", keyword).Msg("places search returned error status")
	}
	return wire.Results, nil
}

func dermatologyName(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range nameFilterTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func parseRating(n json.Number) float64 {
	if n == "" {
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

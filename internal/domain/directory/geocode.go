package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// ErrLocationNotFound means the geocoder had no hit for the city/state pair.
var ErrLocationNotFound = errors.New("location not found")

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Geocoder resolves an Indian city/state pair to coordinates through a
// Nominatim-style search endpoint. First hit wins.
type Geocoder struct {
	baseURL string
	client  *http.Client
}

func NewGeocoder(baseURL string, client *http.Client) *Geocoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Geocoder{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// geocodeHit is one row of a Nominatim search response. Coordinates come
// back as strings.
type geocodeHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode looks up "{city}, {state}, India". Inputs are title-cased first
// so lowercase form values still match.
func (g *Geocoder) Geocode(ctx context.Context, city, state string) (Coordinates, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s, %s, India", titleCase(city), titleCase(state)))
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("building request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "dermacare-directory/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode returned status %d", resp.StatusCode)
	}

	var hits []geocodeHit
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&hits); err != nil {
		return Coordinates{}, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(hits) == 0 {
		return Coordinates{}, ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parsing latitude %q: %w", hits[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parsing longitude %q: %w", hits[0].Lon, err)
	}
	return Coordinates{Lat: lat, Lng: lng}, nil
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest, the way form values like "new delhi" are normalized.
func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

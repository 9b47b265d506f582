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
)

// Geolocation errors. The two cases surface different guidance to the
// user, so they stay distinct instead of collapsing into one failure.
var (
	// ErrPermissionDenied means the user refused the location prompt.
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrUnsupported means the device cannot produce a fix at all.
	ErrUnsupported = errors.New("location not supported")
)

// Geolocator produces one device fix per call.
type Geolocator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

type queryKind int

const (
	querySaved queryKind = iota
	queryLive
)

// LocationQuery is an explicit choice between the profile's saved
// city/state and a live device fix. Construct it with SavedLocation or
// LiveLocation; the zero value is a saved query with empty fields.
type LocationQuery struct {
	kind  queryKind
	city  string
	state string
}

// SavedLocation queries by the profile's city/state pair.
func SavedLocation(city, state string) LocationQuery {
	return LocationQuery{kind: querySaved, city: city, state: state}
}

// LiveLocation queries by a fresh device fix.
func LiveLocation() LocationQuery {
	return LocationQuery{kind: queryLive}
}

// Client calls the directory service. Results are never cached; every
// invocation re-queries.
type Client struct {
	baseURL string
	client  *http.Client
	geo     Geolocator
}

// NewClient builds a directory client for baseURL. geo may be nil when the
// caller never uses live-location queries.
func NewClient(baseURL string, client *http.Client, geo Geolocator) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		geo:     geo,
	}
}

// VerifiedDoctors fetches recommendations for the query. For a live query
// the device is located first; a permission or support failure is returned
// as-is and no request goes out.
func (c *Client) VerifiedDoctors(ctx context.Context, q LocationQuery) ([]HospitalRecommendation, error) {
	params := url.Values{}
	switch q.kind {
	case queryLive:
		if c.geo == nil {
			return nil, ErrUnsupported
		}
		fix, err := c.geo.Locate(ctx)
		if err != nil {
			return nil, err
		}
		params.Set("lat", strconv.FormatFloat(fix.Lat, 'f', -1, 64))
		params.Set("lng", strconv.FormatFloat(fix.Lng, 'f', -1, 64))
	default:
		params.Set("city", q.city)
		params.Set("state", q.state)
	}

	var recs []HospitalRecommendation
	if err := c.getJSON(ctx, "/verified-doctors?"+params.Encode(), &recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []HospitalRecommendation{}
	}
	return recs, nil
}

// States fetches the location taxonomy's state list.
func (c *Client) States(ctx context.Context) ([]string, error) {
	var states []string
	if err := c.getJSON(ctx, "/locations/states", &states); err != nil {
		return nil, err
	}
	return states, nil
}

// Cities fetches the cities of one state. Unknown states come back empty.
func (c *Client) Cities(ctx context.Context, state string) ([]string, error) {
	params := url.Values{}
	params.Set("state", state)
	var cities []string
	if err := c.getJSON(ctx, "/locations/cities?"+params.Encode(), &cities); err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("directory returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(out); err != nil {
		return fmt.Errorf("decoding directory response: %w", err)
	}
	return nil
}

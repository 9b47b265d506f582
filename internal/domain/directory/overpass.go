package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// defaultOverpassServers is the fallback order for the public Overpass
// mirrors. The first server that answers wins.
var defaultOverpassServers = []string{
	"https://overpass-api.de/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
	"https://overpass.nchc.org.tw/api/interpreter",
}

const maxNearbyResults = 10

// OverpassClient finds hospitals and clinics around a point from
// OpenStreetMap data, walking a mirror list until one responds.
type OverpassClient struct {
	servers []string
	client  *http.Client
	log     zerolog.Logger
}

func NewOverpassClient(servers []string, client *http.Client, log zerolog.Logger) *OverpassClient {
	if len(servers) == 0 {
		servers = defaultOverpassServers
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OverpassClient{servers: servers, client: client, log: log}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// NearbyCare queries hospital and clinic features within radiusKM of loc
// and returns them sorted by distance, nearest first, capped at ten.
func (o *OverpassClient) NearbyCare(ctx context.Context, loc Coordinates, radiusKM float64) ([]NearbyResult, error) {
	query := buildOverpassQuery(loc, radiusKM)

	var lastErr error
	for _, server := range o.servers {
		wire, err := o.run(ctx, server, query)
		if err != nil {
			o.log.Warn().Err(err).Str("server", server).Msg("overpass server failed, trying next")
			lastErr = err
			continue
		}
		return mapNearbyResults(wire.Elements, loc), nil
	}
	return nil, fmt.Errorf("all overpass servers failed: %w", lastErr)
}

func (o *OverpassClient) run(ctx context.Context, server, query string) (*overpassResponse, error) {
	body := url.Values{"data": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var wire overpassResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding overpass response: %w", err)
	}
	return &wire, nil
}

// buildOverpassQuery asks for hospital/clinic nodes and ways, plus anything
// tagged with a dermatology speciality, within the radius.
func buildOverpassQuery(loc Coordinates, radiusKM float64) string {
	radiusM := int(radiusKM * 1000)
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"node", "way"} {
		fmt.Fprintf(&b, "  %s[\"amenity\"=\"hospital\"](around:%d,%f,%f);\n", kind, radiusM, loc.Lat, loc.Lng)
		fmt.Fprintf(&b, "  %s[\"amenity\"=\"clinic\"](around:%d,%f,%f);\n", kind, radiusM, loc.Lat, loc.Lng)
		fmt.Fprintf(&b, "  %s[\"healthcare\"=\"hospital\"](around:%d,%f,%f);\n", kind, radiusM, loc.Lat, loc.Lng)
		fmt.Fprintf(&b, "  %s[\"healthcare\"=\"clinic\"](around:%d,%f,%f);\n", kind, radiusM, loc.Lat, loc.Lng)
		fmt.Fprintf(&b, "  %s[\"healthcare:speciality\"~\"dermatology\",i](around:%d,%f,%f);\n", kind, radiusM, loc.Lat, loc.Lng)
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

func mapNearbyResults(elements []overpassElement, origin Coordinates) []NearbyResult {
	out := make([]NearbyResult, 0, len(elements))
	for _, el := range elements {
		lat, lon := el.Lat, el.Lon
		if lat == 0 && lon == 0 {
			if el.Center == nil {
				continue
			}
			lat, lon = el.Center.Lat, el.Center.Lon
		}

		name := el.Tags["name"]
		if name == "" {
			name = "Hospital / Clinic"
		}

		kind := "Hospital / Clinic"
		if strings.Contains(strings.ToLower(el.Tags["healthcare:speciality"]), "derma") {
			kind = "Dermatology Department"
		}

		out = append(out, NearbyResult{
			Name:       name,
			DistanceKM: math.Round(haversineKM(origin.Lat, origin.Lng, lat, lon)*100) / 100,
			Type:       kind,
			Address:    elementAddress(el.Tags),
			MapsURL:    fmt.Sprintf("https://www.google.com/maps?q=%f,%f", lat, lon),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKM < out[j].DistanceKM })
	if len(out) > maxNearbyResults {
		out = out[:maxNearbyResults]
	}
	return out
}

func elementAddress(tags map[string]string) string {
	for _, key := range []string{"addr:full", "addr:street", "addr:city"} {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return "Address not available"
}

// haversineKM is the great-circle distance between two WGS84 points.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

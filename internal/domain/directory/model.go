package directory

// HospitalRecommendation is one verified-doctors row: a dermatology place
// near the caller, rated and linked to its map entry. Rating is zero when
// the upstream listing carries none.
type HospitalRecommendation struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	OpenNow *bool   `json:"open_now,omitempty"`
	MapURL  string  `json:"map_url"`
}

// NearbyResult is one nearby-dermatologists row, built from OpenStreetMap
// data rather than a commercial places index.
type NearbyResult struct {
	Name       string  `json:"name"`
	DistanceKM float64 `json:"distance_km"`
	Type       string  `json:"type"`
	Address    string  `json:"address"`
	MapsURL    string  `json:"maps_url"`
}

package models

import "encoding/json"

// Spot is one named point of interest loaded from the spots database file.
// Fields beyond the known ones are kept in Extra and passed through to output
// untouched.
type Spot struct {
	Name        string         `json:"name"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	Extra       map[string]any `json:"-"`
}

var knownSpotKeys = map[string]bool{
	"name":        true,
	"latitude":    true,
	"longitude":   true,
	"address":     true,
	"description": true,
}

func (s *Spot) UnmarshalJSON(data []byte) error {
	type alias Spot
	var base alias
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range knownSpotKeys {
		delete(raw, key)
	}

	*s = Spot(base)
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

func (s Spot) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+5)
	for k, v := range s.Extra {
		out[k] = v
	}
	out["name"] = s.Name
	out["latitude"] = s.Latitude
	out["longitude"] = s.Longitude
	out["address"] = s.Address
	out["description"] = s.Description
	return json.Marshal(out)
}

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RankedSpot is a Spot with its computed distance from a query point.
type RankedSpot struct {
	Spot
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash,omitempty"`
}

func (r RankedSpot) MarshalJSON() ([]byte, error) {
	data, err := r.Spot.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	out["distance_km"] = r.DistanceKm
	if r.Geohash != "" {
		out["geohash"] = r.Geohash
	}
	return json.Marshal(out)
}

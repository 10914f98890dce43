package services

import (
	"ArGuide/models"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// SpotService holds the tourist spot database in memory. The collection is
// loaded once and never mutated afterwards, so concurrent readers need no
// locking.
type SpotService struct {
	spots       []models.Spot
	defaultTopK int
}

// spotContainerKeys are the top-level object keys a spots database file may
// nest its array under, tried in order.
var spotContainerKeys = []string{"tourist_spots", "ginza_tourist_spots", "locations", "spots"}

// NewSpotService loads the spots database from a JSON file. The root may be a
// bare array, an object holding the array under a known key, or anything else
// (treated as an empty database).
func NewSpotService(dbPath string, defaultTopK int) (*SpotService, error) {
	data, err := os.ReadFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("error reading spot database %s: %w", dbPath, err)
	}
	spots, err := parseSpotDB(data)
	if err != nil {
		return nil, err
	}
	return NewSpotServiceFromSpots(spots, defaultTopK), nil
}

// NewSpotServiceFromSpots builds an index over an already-loaded collection.
func NewSpotServiceFromSpots(spots []models.Spot, defaultTopK int) *SpotService {
	if defaultTopK <= 0 {
		defaultTopK = 5
	}
	return &SpotService{spots: spots, defaultTopK: defaultTopK}
}

func parseSpotDB(data []byte) ([]models.Spot, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err == nil {
		for _, key := range spotContainerKeys {
			if raw, ok := root[key]; ok {
				var spots []models.Spot
				if err := json.Unmarshal(raw, &spots); err != nil {
					return nil, fmt.Errorf("error parsing spot database key %q: %w", key, err)
				}
				return spots, nil
			}
		}
		return nil, nil
	}

	var spots []models.Spot
	if err := json.Unmarshal(data, &spots); err == nil {
		return spots, nil
	}
	return nil, nil
}

const earthRadiusKm = 6371.0 // Radius of Earth in km

// Haversine formula to calculate distance between two lat/lng points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func roundKm(distance float64) float64 {
	return math.Round(distance*1000) / 1000
}

// rank computes the distance from the query point to every spot and returns
// the collection sorted ascending. Ties keep load order.
func (s *SpotService) rank(latitude, longitude float64) []models.RankedSpot {
	ranked := make([]models.RankedSpot, 0, len(s.spots))
	for _, spot := range s.spots {
		ranked = append(ranked, models.RankedSpot{
			Spot:       spot,
			DistanceKm: roundKm(haversine(latitude, longitude, spot.Latitude, spot.Longitude)),
			Geohash:    geohash.Encode(spot.Latitude, spot.Longitude),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// Nearest returns the k closest spots to the query point, ascending by
// distance. k <= 0 falls back to the configured default.
func (s *SpotService) Nearest(latitude, longitude float64, k int) []models.RankedSpot {
	if len(s.spots) == 0 {
		return []models.RankedSpot{}
	}
	if k <= 0 {
		k = s.defaultTopK
	}
	ranked := s.rank(latitude, longitude)
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// Within returns every spot at most radiusKm away, ascending by distance.
func (s *SpotService) Within(latitude, longitude, radiusKm float64) []models.RankedSpot {
	nearby := []models.RankedSpot{}
	for _, spot := range s.rank(latitude, longitude) {
		if spot.DistanceKm <= radiusKm {
			nearby = append(nearby, spot)
		}
	}
	return nearby
}

// FindByName returns the first spot whose name contains the given substring,
// case-insensitively.
func (s *SpotService) FindByName(name string) (models.Spot, bool) {
	nameLower := strings.ToLower(name)
	for _, spot := range s.spots {
		if strings.Contains(strings.ToLower(spot.Name), nameLower) {
			return spot, true
		}
	}
	return models.Spot{}, false
}

// AllSpots returns a copy of the backing collection.
func (s *SpotService) AllSpots() []models.Spot {
	out := make([]models.Spot, len(s.spots))
	copy(out, s.spots)
	return out
}

// Count returns the number of loaded spots.
func (s *SpotService) Count() int {
	return len(s.spots)
}

// DefaultTopK returns the configured default nearest-spot count.
func (s *SpotService) DefaultTopK() int {
	return s.defaultTopK
}

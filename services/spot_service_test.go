package services

import (
	"ArGuide/models"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func tokyoSpots() []models.Spot {
	return []models.Spot{
		{Name: "Ginza Six", Latitude: 35.6717, Longitude: 139.7650, Address: "東京都中央区銀座6丁目"},
		{Name: "Tokyo Tower", Latitude: 35.6586, Longitude: 139.7454, Address: "東京都港区芝公園"},
		{Name: "Kabukiza Theatre", Latitude: 35.6695, Longitude: 139.7679, Address: "東京都中央区銀座4丁目"},
		{Name: "Hama-rikyu Gardens", Latitude: 35.6604, Longitude: 139.7634, Address: "東京都中央区浜離宮庭園"},
	}
}

func TestHaversineSymmetry(t *testing.T) {
	points := [][2]float64{
		{35.6717, 139.7650},
		{35.6586, 139.7454},
		{-33.8688, 151.2093},
		{0, 0},
	}

	for _, a := range points {
		for _, b := range points {
			ab := haversine(a[0], a[1], b[0], b[1])
			ba := haversine(b[0], b[1], a[0], a[1])
			if math.Abs(ab-ba) > 1e-9 {
				t.Errorf("haversine not symmetric: %v->%v = %f, reverse = %f", a, b, ab, ba)
			}
		}
		if d := haversine(a[0], a[1], a[0], a[1]); d > 1e-9 {
			t.Errorf("haversine(%v, %v) = %f, want 0", a, a, d)
		}
	}
}

func TestNearestSortedAndTruncated(t *testing.T) {
	svc := NewSpotServiceFromSpots(tokyoSpots(), 5)

	for _, k := range []int{1, 2, 3, 4, 10} {
		got := svc.Nearest(35.6700, 139.7600, k)

		wantLen := k
		if wantLen > svc.Count() {
			wantLen = svc.Count()
		}
		if len(got) != wantLen {
			t.Fatalf("Nearest k=%d returned %d spots, want %d", k, len(got), wantLen)
		}
		for i := 1; i < len(got); i++ {
			if got[i].DistanceKm < got[i-1].DistanceKm {
				t.Errorf("Nearest k=%d not sorted: %f before %f", k, got[i-1].DistanceKm, got[i].DistanceKm)
			}
		}
	}
}

func TestNearestDefaultTopK(t *testing.T) {
	svc := NewSpotServiceFromSpots(tokyoSpots(), 2)
	got := svc.Nearest(35.6700, 139.7600, 0)
	if len(got) != 2 {
		t.Fatalf("Nearest with k=0 returned %d spots, want configured default 2", len(got))
	}
}

func TestNearestScenarioGinza(t *testing.T) {
	svc := NewSpotServiceFromSpots([]models.Spot{
		{Name: "Ginza Six", Latitude: 35.6717, Longitude: 139.7650},
		{Name: "Tokyo Tower", Latitude: 35.6586, Longitude: 139.7454},
	}, 5)

	got := svc.Nearest(35.6700, 139.7600, 1)
	if len(got) != 1 {
		t.Fatalf("Nearest returned %d spots, want 1", len(got))
	}
	if got[0].Name != "Ginza Six" {
		t.Errorf("nearest spot = %q, want Ginza Six", got[0].Name)
	}
	if got[0].DistanceKm <= 0 || got[0].DistanceKm >= 2 {
		t.Errorf("distance_km = %f, want within (0, 2)", got[0].DistanceKm)
	}
	if got[0].Geohash == "" {
		t.Error("ranked spot has no geohash")
	}
}

func TestWithinMatchesBruteForce(t *testing.T) {
	spots := tokyoSpots()
	svc := NewSpotServiceFromSpots(spots, 5)

	lat, lon := 35.6700, 139.7600
	for _, radius := range []float64{0.1, 0.5, 1.0, 2.0, 5.0} {
		got := svc.Within(lat, lon, radius)

		want := map[string]bool{}
		for _, spot := range spots {
			if roundKm(haversine(lat, lon, spot.Latitude, spot.Longitude)) <= radius {
				want[spot.Name] = true
			}
		}

		if len(got) != len(want) {
			t.Fatalf("Within radius=%f returned %d spots, brute force found %d", radius, len(got), len(want))
		}
		for _, spot := range got {
			if spot.DistanceKm > radius {
				t.Errorf("Within radius=%f returned %s at %f km", radius, spot.Name, spot.DistanceKm)
			}
			if !want[spot.Name] {
				t.Errorf("Within radius=%f returned unexpected spot %s", radius, spot.Name)
			}
		}
	}
}

func TestFindByName(t *testing.T) {
	svc := NewSpotServiceFromSpots(tokyoSpots(), 5)

	tests := []struct {
		query     string
		wantName  string
		wantFound bool
	}{
		{"tokyo tower", "Tokyo Tower", true},
		{"GINZA", "Ginza Six", true},
		{"kabuki", "Kabukiza Theatre", true},
		{"skytree", "", false},
	}

	for _, tt := range tests {
		spot, found := svc.FindByName(tt.query)
		if found != tt.wantFound {
			t.Errorf("FindByName(%q) found = %v, want %v", tt.query, found, tt.wantFound)
			continue
		}
		if found && spot.Name != tt.wantName {
			t.Errorf("FindByName(%q) = %q, want %q", tt.query, spot.Name, tt.wantName)
		}
	}
}

func TestEmptyIndexReturnsEmpty(t *testing.T) {
	svc := NewSpotServiceFromSpots(nil, 5)

	if got := svc.Nearest(35.0, 139.0, 3); len(got) != 0 {
		t.Errorf("Nearest on empty index returned %d spots", len(got))
	}
	if got := svc.Within(35.0, 139.0, 10); len(got) != 0 {
		t.Errorf("Within on empty index returned %d spots", len(got))
	}
	if _, found := svc.FindByName("anything"); found {
		t.Error("FindByName on empty index reported a match")
	}
}

func TestLoadSpotDatabaseFormats(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "tourist_spots key",
			content:   `{"tourist_spots": [{"name": "A", "latitude": 1, "longitude": 2}]}`,
			wantCount: 1,
		},
		{
			name:      "ginza_tourist_spots key",
			content:   `{"ginza_tourist_spots": [{"name": "A", "latitude": 1, "longitude": 2}, {"name": "B", "latitude": 3, "longitude": 4}]}`,
			wantCount: 2,
		},
		{
			name:      "locations key",
			content:   `{"locations": [{"name": "A", "latitude": 1, "longitude": 2}]}`,
			wantCount: 1,
		},
		{
			name:      "spots key",
			content:   `{"spots": [{"name": "A", "latitude": 1, "longitude": 2}]}`,
			wantCount: 1,
		},
		{
			name:      "bare array",
			content:   `[{"name": "A", "latitude": 1, "longitude": 2}]`,
			wantCount: 1,
		},
		{
			name:      "object without known keys",
			content:   `{"something_else": true}`,
			wantCount: 0,
		},
		{
			name:      "scalar root",
			content:   `42`,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "spots.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			svc, err := NewSpotService(path, 5)
			if err != nil {
				t.Fatalf("NewSpotService: %v", err)
			}
			if svc.Count() != tt.wantCount {
				t.Errorf("loaded %d spots, want %d", svc.Count(), tt.wantCount)
			}
		})
	}
}

func TestLoadKeepsExtraFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spots.json")
	content := `{"tourist_spots": [{"no": 7, "name": "A", "latitude": 1, "longitude": 2, "address": "addr", "description": "desc", "geohash": "xn76urwe"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	svc, err := NewSpotService(path, 5)
	if err != nil {
		t.Fatal(err)
	}
	spots := svc.AllSpots()
	if len(spots) != 1 {
		t.Fatalf("loaded %d spots, want 1", len(spots))
	}
	if spots[0].Extra["geohash"] != "xn76urwe" {
		t.Errorf("extra field geohash = %v, want xn76urwe", spots[0].Extra["geohash"])
	}
	if _, ok := spots[0].Extra["no"]; !ok {
		t.Error("extra field no was dropped")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewSpotService(filepath.Join(t.TempDir(), "missing.json"), 5); err == nil {
		t.Error("NewSpotService on a missing file returned no error")
	}
}

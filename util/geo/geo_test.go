package geo

import (
	"testing"
)

var (
	sanFrancisco = Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	losAngeles   = Coordinates{Latitude: 34.0522, Longitude: -118.2437}
)

func TestCalculateDistance(t *testing.T) {
	d := CalculateDistance(sanFrancisco, losAngeles)

	// SF to LA is roughly 559 km
	if d < 500 || d > 600 {
		t.Errorf("CalculateDistance(SF, LA) = %.2f km; want 500-600", d)
	}
}

func TestCalculateDistanceSymmetric(t *testing.T) {
	testCases := []struct {
		name string
		a, b Coordinates
	}{
		{"SF-LA", sanFrancisco, losAngeles},
		{"equator crossing", Coordinates{Latitude: 10, Longitude: 20}, Coordinates{Latitude: -10, Longitude: -20}},
		{"antimeridian", Coordinates{Latitude: 0, Longitude: 179.9}, Coordinates{Latitude: 0, Longitude: -179.9}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ab := CalculateDistance(tc.a, tc.b)
			ba := CalculateDistance(tc.b, tc.a)
			if ab != ba {
				t.Errorf("distance not symmetric: %v vs %v", ab, ba)
			}
		})
	}
}

func TestCalculateDistanceIdenticalPoints(t *testing.T) {
	d := CalculateDistance(sanFrancisco, sanFrancisco)
	if d > 0.001 {
		t.Errorf("CalculateDistance(a, a) = %v; want ~0", d)
	}
}

func TestFuzzCoordinatesKeepsExact(t *testing.T) {
	result := FuzzCoordinates(sanFrancisco)

	if result.Exact != sanFrancisco {
		t.Errorf("exact coordinates changed: %+v", result.Exact)
	}
}

func TestFuzzCoordinatesBound(t *testing.T) {
	// Randomized, so check the bound over many trials. The displacement
	// is capped at 0.025 degrees which stays under 3 km at this latitude.
	var max float64
	for i := 0; i < 1000; i++ {
		result := FuzzCoordinates(sanFrancisco)
		d := CalculateDistance(result.Exact, result.Fuzzy)
		if d > max {
			max = d
		}
	}

	if max > 3 {
		t.Errorf("max fuzz displacement over 1000 trials = %.3f km; want < 3", max)
	}
}

func TestFormatDistance(t *testing.T) {
	testCases := []struct {
		km   float64
		want string
	}{
		{0.5, "less than 1 km"},
		{0.99, "less than 1 km"},
		{1, "within 1 km"},
		{5, "within 5 km"},
		{15.7, "within 16 km"},
		{15.4, "within 15 km"},
	}

	for _, tc := range testCases {
		if got := FormatDistance(tc.km); got != tc.want {
			t.Errorf("FormatDistance(%v) = %q; want %q", tc.km, got, tc.want)
		}
	}
}

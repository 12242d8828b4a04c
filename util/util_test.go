package util

import (
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	testCases := []struct {
		name  string
		input []string
		want  []string
	}{
		{"lowercases and trims", []string{" Hiking ", "BOARD-GAMES"}, []string{"hiking", "board-games"}},
		{"drops blanks", []string{"art", "", "  "}, []string{"art"}},
		{"drops duplicates keeping order", []string{"music", "tech", "Music"}, []string{"music", "tech"}},
		{"empty input", []string{}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTags(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("NormalizeTags(%v) = %v; want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("NormalizeTags(%v)[%d] = %q; want %q", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPointRoundTrip(t *testing.T) {
	lat, lon := 35.1856, 33.3823

	point := PointFromLatLon(lat, lon)
	if !point.Valid {
		t.Fatal("PointFromLatLon returned invalid point")
	}

	gotLat, gotLon := PointToLatLon(point)
	if gotLat != lat || gotLon != lon {
		t.Errorf("round trip = (%v, %v); want (%v, %v)", gotLat, gotLon, lat, lon)
	}
}

func TestValidateStructCoordinates(t *testing.T) {
	type location struct {
		Lat float64 `validate:"latitude"`
		Lng float64 `validate:"longitude"`
	}

	if err := ValidateStruct(location{Lat: 37.7749, Lng: -122.4194}); err != nil {
		t.Errorf("valid coordinates rejected: %v", err)
	}
	if err := ValidateStruct(location{Lat: 91, Lng: 0}); err == nil {
		t.Error("latitude 91 accepted")
	}
	if err := ValidateStruct(location{Lat: 0, Lng: -181}); err == nil {
		t.Error("longitude -181 accepted")
	}
}

func TestValidateStructTags(t *testing.T) {
	type withTags struct {
		Interests []string `validate:"tags"`
	}

	if err := ValidateStruct(withTags{Interests: []string{"hiking", "art"}}); err != nil {
		t.Errorf("valid tags rejected: %v", err)
	}
	if err := ValidateStruct(withTags{Interests: []string{"hiking", " "}}); err == nil {
		t.Error("blank tag accepted")
	}
}

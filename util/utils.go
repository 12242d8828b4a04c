package util

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// PointToLatLon unpacks a postgres point column into latitude/longitude.
func PointToLatLon(point pgtype.Point) (float64, float64) {
	return point.P.Y, point.P.X
}

// PointFromLatLon creates a pgtype.Point from latitude and longitude.
func PointFromLatLon(lat, lon float64) pgtype.Point {
	return pgtype.Point{
		P: pgtype.Vec2{
			X: lon,
			Y: lat,
		},
		Valid: true,
	}
}

// NormalizeTags lowercases and trims a tag list, dropping blanks and
// duplicates while preserving order. Interests and group tags are stored
// normalized so overlap comparisons are exact.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// IntPtr returns a pointer to the given integer.
func IntPtr(i int) *int {
	return &i
}

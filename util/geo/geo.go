package geo

import (
	"fmt"
	"math"
	"math/rand"
)

// earthRadiusKm is the mean Earth radius used for haversine distances.
const earthRadiusKm = 6371

// fuzzMaxDegrees bounds the random displacement applied to a location,
// roughly 2.5 km at mid-latitudes.
const fuzzMaxDegrees = 0.025

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FuzzedCoordinates struct {
	Exact Coordinates `json:"exact"`
	Fuzzy Coordinates `json:"fuzzy"`
}

// FuzzCoordinates displaces a location by a uniformly random angle and a
// uniformly random distance in [0, fuzzMaxDegrees]. The result is stored
// on the profile so repeated discovery queries cannot triangulate the
// exact point.
func FuzzCoordinates(exact Coordinates) FuzzedCoordinates {
	angle := rand.Float64() * 2 * math.Pi
	dist := rand.Float64() * fuzzMaxDegrees

	return FuzzedCoordinates{
		Exact: exact,
		Fuzzy: Coordinates{
			Latitude:  exact.Latitude + dist*math.Sin(angle),
			Longitude: exact.Longitude + dist*math.Cos(angle),
		},
	}
}

// CalculateDistance returns the great-circle distance between two points
// in kilometers.
func CalculateDistance(a, b Coordinates) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// FormatDistance renders a distance for display.
func FormatDistance(km float64) string {
	if km < 1 {
		return "less than 1 km"
	}
	return fmt.Sprintf("within %d km", int(math.Round(km)))
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/barengan/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance returns the great-circle distance between two points in kilometers using the Haversine formula
func CalculateDistance(a, b models.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// WithinRadius reports whether b lies within radiusKm of a
func WithinRadius(a, b models.Location, radiusKm float64) bool {
	return CalculateDistance(a, b) <= radiusKm
}

// CoverCells returns the cell containing location plus its eight neighbours.
// Any point closer than one cell edge to location falls inside one of them.
func CoverCells(location models.Location, precision uint) []string {
	center := EncodeLocation(location, precision)
	return append([]string{center}, geohash.Neighbors(center)...)
}

// RouteCells returns the distinct cells of the given points, in first-seen order
func RouteCells(precision uint, points ...models.Location) []string {
	seen := make(map[string]struct{}, len(points))
	cells := make([]string, 0, len(points))
	for _, p := range points {
		cell := EncodeLocation(p, precision)
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		cells = append(cells, cell)
	}
	return cells
}

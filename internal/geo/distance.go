package geo

import "math"

// earthRadiusMiles is the mean Earth radius used for great-circle distance.
const earthRadiusMiles = 3956.0

// Distance returns the great-circle distance between two coordinates in miles,
// computed with the haversine formula. Symmetric, and zero for identical points.
func Distance(a, b Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lon1 := radians(a.Longitude)
	lat2 := radians(b.Latitude)
	lon2 := radians(b.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(h))

	return c * earthRadiusMiles
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

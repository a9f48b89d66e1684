package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	sf := Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	sj := Coordinates{Latitude: 37.3382, Longitude: -121.8863}
	ny := Coordinates{Latitude: 40.7128, Longitude: -74.0060}

	t.Run("Zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(sf, sf))
	})

	t.Run("Symmetric", func(t *testing.T) {
		assert.InDelta(t, Distance(sf, ny), Distance(ny, sf), 1e-9)
	})

	t.Run("San Francisco to San Jose", func(t *testing.T) {
		d := Distance(sf, sj)
		// Known great-circle distance is roughly 42 miles.
		assert.InDelta(t, 42, d, 3)
	})

	t.Run("San Francisco to New York", func(t *testing.T) {
		d := Distance(sf, ny)
		assert.InDelta(t, 2565, d, 30)
	})

	t.Run("Non-negative", func(t *testing.T) {
		assert.GreaterOrEqual(t, Distance(sj, ny), 0.0)
	})
}

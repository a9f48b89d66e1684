package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher() *Matcher {
	return NewMatcher(NewIndex())
}

func TestMatchRemote(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name           string
		location       string
		remoteAllowed  bool
		wantType       MatchType
		wantConfidence float64
	}{
		{"Remote candidate and remote job", "Remote", true, MatchRemote, 100},
		{"Work from home phrasing", "Work from home (US)", true, MatchRemote, 100},
		{"WFH abbreviation", "WFH", true, MatchRemote, 100},
		{"Remote candidate but on-site job", "Remote", false, MatchNone, 20},
		{"Distributed team phrasing", "distributed, anywhere", true, MatchRemote, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Match(tt.location, []string{"San Francisco, CA"}, MatchOptions{RemoteAllowed: tt.remoteAllowed})
			assert.Equal(t, tt.wantType, result.Type)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

func TestMatchTiers(t *testing.T) {
	m := newTestMatcher()

	t.Run("Exact city match", func(t *testing.T) {
		result := m.Match("San Francisco, CA", []string{"San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchExactCity, result.Type)
		assert.Equal(t, 100.0, result.Confidence)
	})

	t.Run("Exact match short-circuits later requirements", func(t *testing.T) {
		result := m.Match("Austin, TX", []string{"Austin, TX", "San Francisco, CA"}, MatchOptions{MaxDistanceMiles: 5000})
		assert.Equal(t, MatchExactCity, result.Type)
		assert.Equal(t, 100.0, result.Confidence)
	})

	t.Run("Metro area match", func(t *testing.T) {
		result := m.Match("San Jose, CA", []string{"San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchMetroArea, result.Type)
		assert.Equal(t, 90.0, result.Confidence)
	})

	t.Run("State match with hybrid", func(t *testing.T) {
		result := m.Match("San Diego, CA", []string{"San Francisco, CA"}, MatchOptions{HybridAllowed: true})
		assert.Equal(t, MatchState, result.Type)
		assert.Equal(t, 70.0, result.Confidence)
	})

	t.Run("State match without hybrid", func(t *testing.T) {
		result := m.Match("San Diego, CA", []string{"San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchState, result.Type)
		assert.Equal(t, 50.0, result.Confidence)
	})

	t.Run("Country match with hybrid", func(t *testing.T) {
		result := m.Match("Boston, MA", []string{"Seattle, WA"}, MatchOptions{HybridAllowed: true})
		assert.Equal(t, MatchCountry, result.Type)
		assert.Equal(t, 40.0, result.Confidence)
	})

	t.Run("Country match without hybrid", func(t *testing.T) {
		result := m.Match("Boston, MA", []string{"Seattle, WA"}, MatchOptions{})
		assert.Equal(t, MatchCountry, result.Type)
		assert.Equal(t, 30.0, result.Confidence)
	})

	t.Run("No common tier across countries", func(t *testing.T) {
		result := m.Match("London", []string{"Tokyo"}, MatchOptions{})
		assert.Equal(t, MatchNone, result.Type)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Commute-belt city reaches metro tier", func(t *testing.T) {
		result := m.Match("Oakland, CA", []string{"San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchMetroArea, result.Type)
		assert.Equal(t, 90.0, result.Confidence)
	})
}

func TestMatchAreaRequirements(t *testing.T) {
	m := newTestMatcher()

	t.Run("State name requirement", func(t *testing.T) {
		result := m.Match("Dallas, TX", []string{"Texas"}, MatchOptions{HybridAllowed: true})
		assert.Equal(t, MatchState, result.Type)
		assert.Equal(t, 70.0, result.Confidence)
	})

	t.Run("State code requirement without hybrid", func(t *testing.T) {
		result := m.Match("Denver, CO", []string{"CO"}, MatchOptions{})
		assert.Equal(t, MatchState, result.Type)
		assert.Equal(t, 50.0, result.Confidence)
	})

	t.Run("State requirement for a different state", func(t *testing.T) {
		result := m.Match("Boston, MA", []string{"Texas"}, MatchOptions{})
		assert.Equal(t, MatchNone, result.Type)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Country alias requirement", func(t *testing.T) {
		result := m.Match("London", []string{"UK"}, MatchOptions{})
		assert.Equal(t, MatchCountry, result.Type)
		assert.Equal(t, 30.0, result.Confidence)
	})

	t.Run("Country requirement with hybrid", func(t *testing.T) {
		result := m.Match("Denver, CO", []string{"United States"}, MatchOptions{HybridAllowed: true})
		assert.Equal(t, MatchCountry, result.Type)
		assert.Equal(t, 40.0, result.Confidence)
	})

	t.Run("State name that is also a city resolves as the city", func(t *testing.T) {
		result := m.Match("Buffalo, NY", []string{"New York"}, MatchOptions{HybridAllowed: true})
		assert.Equal(t, MatchState, result.Type)
		assert.Equal(t, 70.0, result.Confidence)
	})
}

func TestMatchRadius(t *testing.T) {
	m := newTestMatcher()

	t.Run("Within radius beats state tier", func(t *testing.T) {
		result := m.Match("San Jose, CA", []string{"San Diego, CA"}, MatchOptions{MaxDistanceMiles: 500})
		require.Equal(t, MatchWithinRadius, result.Type)
		require.NotNil(t, result.DistanceMiles)
		assert.Greater(t, *result.DistanceMiles, 0.0)
		assert.LessOrEqual(t, *result.DistanceMiles, 500.0)
		// Confidence scales down with distance but never below 60.
		assert.GreaterOrEqual(t, result.Confidence, 60.0)
		assert.LessOrEqual(t, result.Confidence, 100.0)
	})

	t.Run("Confidence follows distance formula", func(t *testing.T) {
		result := m.Match("San Jose, CA", []string{"San Francisco, CA"}, MatchOptions{MaxDistanceMiles: 100})
		// Metro tier (90) still wins over a radius match at this distance, so
		// force the comparison through the returned metro result.
		assert.Equal(t, MatchMetroArea, result.Type)

		distance := Distance(
			Coordinates{Latitude: 37.3382, Longitude: -121.8863},
			Coordinates{Latitude: 37.7749, Longitude: -122.4194},
		)
		expected := 100 - distance/100*40
		if expected < 60 {
			expected = 60
		}
		assert.Less(t, expected, 90.0)
	})

	t.Run("Outside radius falls back to lower tier", func(t *testing.T) {
		result := m.Match("Seattle, WA", []string{"Miami, FL"}, MatchOptions{MaxDistanceMiles: 50})
		assert.Equal(t, MatchCountry, result.Type)
	})
}

func TestMatchUnresolvable(t *testing.T) {
	m := newTestMatcher()

	t.Run("Empty candidate location", func(t *testing.T) {
		result := m.Match("", []string{"San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchNone, result.Type)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Unparseable candidate location", func(t *testing.T) {
		result := m.Match("Xyzzyville, ZZ", []string{"San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchNone, result.Type)
		assert.Equal(t, 10.0, result.Confidence)
	})

	t.Run("Unparseable requirement is skipped", func(t *testing.T) {
		result := m.Match("San Francisco, CA", []string{"Nowhere, ZZ", "San Francisco, CA"}, MatchOptions{})
		assert.Equal(t, MatchExactCity, result.Type)
	})

	t.Run("Remote requirement entry with remote allowed", func(t *testing.T) {
		result := m.Match("Austin, TX", []string{"remote"}, MatchOptions{RemoteAllowed: true})
		assert.Equal(t, MatchRemote, result.Type)
		assert.Equal(t, 100.0, result.Confidence)
	})
}

func TestMatchBestOfAccumulation(t *testing.T) {
	m := newTestMatcher()

	// Against two requirements, the state tier from the second must win over the
	// country tier from the first.
	result := m.Match("San Diego, CA", []string{"Boston, MA", "San Francisco, CA"}, MatchOptions{HybridAllowed: true})
	assert.Equal(t, MatchState, result.Type)
	assert.Equal(t, 70.0, result.Confidence)
}

func TestMatchTypeString(t *testing.T) {
	assert.Equal(t, "exact_city", MatchExactCity.String())
	assert.Equal(t, "no_match", MatchNone.String())
	assert.Equal(t, "within_radius", MatchWithinRadius.String())
	assert.Equal(t, "remote", MatchRemote.String())
}

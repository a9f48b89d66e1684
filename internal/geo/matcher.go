package geo

import (
	"fmt"
	"strings"
)

// MatchType is a closed enumeration of location match tiers.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchExactCity
	MatchMetroArea
	MatchState
	MatchCountry
	MatchWithinRadius
	MatchRemote
)

var matchTypeNames = map[MatchType]string{
	MatchNone:         "no_match",
	MatchExactCity:    "exact_city",
	MatchMetroArea:    "metro_area",
	MatchState:        "state_match",
	MatchCountry:      "country_match",
	MatchWithinRadius: "within_radius",
	MatchRemote:       "remote",
}

// String returns the wire name of the match type.
func (t MatchType) String() string {
	return matchTypeNames[t]
}

// MatchResult describes how well a candidate location satisfies a job's
// location requirements.
type MatchResult struct {
	Type       MatchType `json:"match_type"`
	Confidence float64   `json:"confidence"` // 0-100
	// DistanceMiles is set only for radius matches.
	DistanceMiles *float64  `json:"distance_miles,omitempty"`
	Location      *Location `json:"matched_location,omitempty"`
	Details       string    `json:"details,omitempty"`
}

// MatchOptions carries the job-side flags that shape location matching.
type MatchOptions struct {
	RemoteAllowed bool
	HybridAllowed bool
	// MaxDistanceMiles enables radius matching when greater than zero.
	MaxDistanceMiles float64
}

// remoteKeywords are phrases that mark a candidate as remote-only.
var remoteKeywords = []string{
	"remote", "work from home", "wfh", "distributed", "anywhere", "global",
}

// Matcher resolves candidate locations against job requirements using the
// gazetteer index. Safe for concurrent use.
type Matcher struct {
	index *Index
}

// NewMatcher creates a Matcher backed by the given index.
func NewMatcher(index *Index) *Matcher {
	return &Matcher{index: index}
}

// Index exposes the underlying gazetteer.
func (m *Matcher) Index() *Index {
	return m.index
}

// Match evaluates a candidate location against the job's required locations and
// returns the best match tier found. Required locations are considered in the
// order given; an exact city+state match short-circuits the remaining entries.
func (m *Matcher) Match(candidateLocation string, requiredLocations []string, opts MatchOptions) MatchResult {
	candidateLocation = strings.TrimSpace(candidateLocation)
	if candidateLocation == "" {
		return MatchResult{Type: MatchNone, Confidence: 0, Details: "no candidate location provided"}
	}

	if containsRemoteKeyword(candidateLocation) {
		if opts.RemoteAllowed {
			return MatchResult{
				Type:       MatchRemote,
				Confidence: 100,
				Details:    "remote candidate matches remote job",
			}
		}
		return MatchResult{
			Type:       MatchNone,
			Confidence: 20,
			Details:    "remote candidate but remote work not allowed",
		}
	}

	candidate := m.index.Parse(candidateLocation)
	if candidate == nil {
		return MatchResult{
			Type:       MatchNone,
			Confidence: 10,
			Details:    fmt.Sprintf("could not resolve candidate location: %s", candidateLocation),
		}
	}

	best := MatchResult{Type: MatchNone, Confidence: 0}

	for _, required := range requiredLocations {
		if strings.EqualFold(required, "remote") && opts.RemoteAllowed {
			return MatchResult{Type: MatchRemote, Confidence: 100, Details: "remote work allowed"}
		}

		// Bare state and country entries resolve through the abbreviation and
		// alias tables. Direct city keys win since names like "New York" and
		// "Washington" are both.
		if !m.index.hasKey(required) {
			if code, ok := m.index.StateCode(required); ok {
				if candidate.Country == "USA" && strings.EqualFold(candidate.State, code) {
					best = bestOf(best, MatchResult{
						Type:       MatchState,
						Confidence: stateConfidence(opts.HybridAllowed),
						Details:    fmt.Sprintf("same state: %s", code),
					})
				}
				continue
			}
			if country, ok := m.index.Country(required); ok {
				if strings.EqualFold(candidate.Country, country) {
					best = bestOf(best, MatchResult{
						Type:       MatchCountry,
						Confidence: countryConfidence(opts.HybridAllowed),
						Details:    fmt.Sprintf("same country: %s", country),
					})
				}
				continue
			}
		}

		req := m.index.Parse(required)
		if req == nil {
			continue
		}

		if strings.EqualFold(candidate.City, req.City) && strings.EqualFold(candidate.State, req.State) {
			return MatchResult{
				Type:       MatchExactCity,
				Confidence: 100,
				Location:   req,
				Details:    fmt.Sprintf("exact match: %s, %s", candidate.City, candidate.State),
			}
		}

		switch {
		case candidate.MetroArea != "" && candidate.MetroArea == req.MetroArea:
			best = bestOf(best, MatchResult{
				Type:       MatchMetroArea,
				Confidence: 90,
				Location:   req,
				Details:    fmt.Sprintf("metro area match: %s", candidate.MetroArea),
			})

		case candidate.State != "" && strings.EqualFold(candidate.State, req.State) &&
			candidate.Country == "USA" && req.Country == "USA":
			best = bestOf(best, MatchResult{
				Type:       MatchState,
				Confidence: stateConfidence(opts.HybridAllowed),
				Location:   req,
				Details:    fmt.Sprintf("same state: %s", candidate.State),
			})

		case candidate.Country == req.Country:
			best = bestOf(best, MatchResult{
				Type:       MatchCountry,
				Confidence: countryConfidence(opts.HybridAllowed),
				Location:   req,
				Details:    fmt.Sprintf("same country: %s", candidate.Country),
			})
		}

		// Radius matching is evaluated independently of the tiers above.
		if opts.MaxDistanceMiles > 0 {
			distance := Distance(candidate.Coordinates, req.Coordinates)
			if distance <= opts.MaxDistanceMiles {
				confidence := 100 - distance/opts.MaxDistanceMiles*40
				if confidence < 60 {
					confidence = 60
				}
				best = bestOf(best, MatchResult{
					Type:          MatchWithinRadius,
					Confidence:    confidence,
					DistanceMiles: &distance,
					Location:      req,
					Details:       fmt.Sprintf("within %.1f miles of %s", distance, req.City),
				})
			}
		}
	}

	return best
}

func bestOf(current, candidate MatchResult) MatchResult {
	if candidate.Confidence > current.Confidence {
		return candidate
	}
	return current
}

func stateConfidence(hybridAllowed bool) float64 {
	if hybridAllowed {
		return 70
	}
	return 50
}

func countryConfidence(hybridAllowed bool) float64 {
	if hybridAllowed {
		return 40
	}
	return 30
}

func containsRemoteKeyword(location string) bool {
	lower := strings.ToLower(location)
	for _, keyword := range remoteKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

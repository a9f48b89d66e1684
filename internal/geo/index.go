// Package geo provides the location gazetteer and tiered location matching used
// by the scoring engine. The index is built once at startup and is read-only
// afterwards, so it is safe for concurrent readers.
package geo

import (
	"sort"
	"strings"
)

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one gazetteer record. Records are immutable after NewIndex.
type Location struct {
	Name        string      `json:"name"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	MetroArea   string      `json:"metro_area,omitempty"`
	Aliases     []string    `json:"aliases,omitempty"`
	Population  int         `json:"population,omitempty"`
}

// Index is the read-only location gazetteer. Lookups are keyed by normalized
// city and "city, state" strings.
type Index struct {
	locations map[string]*Location
	// insertion order of unique records, for deterministic iteration
	ordered []*Location

	stateCodes map[string]string
	countries  map[string][]string
}

// NewIndex builds the gazetteer from the embedded city tables.
func NewIndex() *Index {
	idx := &Index{
		locations:  make(map[string]*Location),
		stateCodes: usStateAbbreviations,
		countries:  countryAliases,
	}

	for _, row := range usCities {
		idx.add(row)
	}
	for _, row := range internationalCities {
		idx.add(row)
	}

	// Commute-belt cities become derived records anchored on their metro's
	// principal city, so inputs like "Oakland" still land in the right metro
	// tier. Metros are visited in sorted order; cities already indexed keep
	// their own record.
	metros := make([]string, 0, len(metroCities))
	for metro := range metroCities {
		metros = append(metros, metro)
	}
	sort.Strings(metros)
	for _, metro := range metros {
		anchor := idx.metroAnchor(metro)
		if anchor == nil {
			continue
		}
		for _, city := range metroCities[metro] {
			key := strings.ToLower(city)
			if _, ok := idx.locations[key]; ok {
				continue
			}
			loc := &Location{
				Name:        city,
				City:        city,
				Country:     anchor.Country,
				Coordinates: anchor.Coordinates,
				MetroArea:   metro,
			}
			idx.ordered = append(idx.ordered, loc)
			idx.locations[key] = loc
		}
	}

	return idx
}

func (idx *Index) metroAnchor(metro string) *Location {
	for _, loc := range idx.ordered {
		if loc.MetroArea == metro {
			return loc
		}
	}
	return nil
}

func (idx *Index) add(row cityRow) {
	loc := &Location{
		Name:        row.city,
		City:        row.city,
		State:       row.state,
		Country:     row.country,
		Coordinates: Coordinates{Latitude: row.lat, Longitude: row.lon},
		MetroArea:   row.metro,
		Aliases:     cityAliases[row.city],
		Population:  row.population,
	}

	idx.ordered = append(idx.ordered, loc)

	// Multiple keys per record for flexible lookup.
	city := strings.ToLower(row.city)
	idx.locations[city] = loc
	if row.state != "" {
		idx.locations[city+", "+strings.ToLower(row.state)] = loc
	}
}

// Len reports the number of unique records in the index.
func (idx *Index) Len() int {
	return len(idx.ordered)
}

// Parse resolves free-text location input to a gazetteer record. Resolution
// order: direct key lookup, substring containment against keys, then alias
// containment. Returns nil when nothing resolves; an unknown location is not
// an error.
func (idx *Index) Parse(text string) *Location {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	if loc, ok := idx.locations[text]; ok {
		return loc
	}

	// Partial matches against the indexed keys, in record order so the result
	// is deterministic.
	for _, loc := range idx.ordered {
		for _, key := range idx.keysFor(loc) {
			if strings.Contains(key, text) || strings.Contains(text, key) {
				return loc
			}
		}
	}

	for _, loc := range idx.ordered {
		for _, alias := range loc.Aliases {
			if strings.Contains(text, strings.ToLower(alias)) {
				return loc
			}
		}
	}

	return nil
}

func (idx *Index) keysFor(loc *Location) []string {
	city := strings.ToLower(loc.City)
	if loc.State == "" {
		return []string{city}
	}
	return []string{city, city + ", " + strings.ToLower(loc.State)}
}

// hasKey reports whether text is a direct lookup key.
func (idx *Index) hasKey(text string) bool {
	_, ok := idx.locations[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// StateCode resolves a full US state name or two-letter code to the code.
func (idx *Index) StateCode(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for name, code := range idx.stateCodes {
		if strings.EqualFold(text, name) || strings.EqualFold(text, code) {
			return code, true
		}
	}
	return "", false
}

// Country resolves a country name or alias to its canonical gazetteer name.
func (idx *Index) Country(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for name, aliases := range idx.countries {
		if strings.EqualFold(text, name) {
			return name, true
		}
		for _, alias := range aliases {
			if strings.EqualFold(text, alias) {
				return name, true
			}
		}
	}
	return "", false
}

// Suggest returns up to limit records whose keys contain the partial text,
// largest cities first. Intended for autocomplete surfaces.
func (idx *Index) Suggest(partial string, limit int) []*Location {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" || limit <= 0 {
		return nil
	}

	var matches []*Location
	for _, loc := range idx.ordered {
		for _, key := range idx.keysFor(loc) {
			if strings.Contains(key, partial) {
				matches = append(matches, loc)
				break
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Population > matches[j].Population
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// ValidateRequirements reports, per requirement string, whether it resolves
// against the gazetteer, the state table, or the country aliases.
func (idx *Index) ValidateRequirements(locations []string) map[string]bool {
	results := make(map[string]bool, len(locations))
	for _, loc := range locations {
		_, isState := idx.StateCode(loc)
		_, isCountry := idx.Country(loc)
		results[loc] = isState || isCountry || idx.Parse(loc) != nil
	}
	return results
}

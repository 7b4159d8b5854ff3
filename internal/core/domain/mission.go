package domain

import (
	"net/url"
	"sort"
	"strings"
)

// Suggestion limits. Autocomplete is intentionally short; the fuzzy
// fallback after a failed lookup shows a longer list.
const (
	MaxAutocompleteSuggestions = 5
	MaxFuzzySuggestions        = 10
)

// VehicleRef is the OSDR vehicle reference: a URL-encoded resource
// identifier from which a human-readable name is derived.
type VehicleRef struct {
	Vehicle string `json:"vehicle"`
}

// MissionParents holds the mission's related study references.
type MissionParents struct {
	GLDSStudy []string `json:"GLDS_Study"`
}

// MissionRecord is a single OSDR mission. Records are transient: they are
// re-fetched per query and never cached across queries.
type MissionRecord struct {
	Identifier string         `json:"identifier"`
	ID         int64          `json:"id"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Aliases    []string       `json:"aliases"`
	Vehicle    VehicleRef     `json:"vehicle"`
	Parents    MissionParents `json:"parents"`
}

// IsZero reports whether the record carries no mission. The OSDR endpoint
// answers 400/404 for unknown identifiers; the client maps those to a zero
// record so callers can distinguish "not found" from a transport error.
func (m *MissionRecord) IsZero() bool {
	return m == nil || (m.Identifier == "" && m.ID == 0)
}

// VehicleName extracts the human-readable vehicle name from the reference
// URL, decoding percent-escapes. Returns "Unspecified" when absent.
func (m *MissionRecord) VehicleName() string {
	ref := m.Vehicle.Vehicle
	if ref == "" {
		return "Unspecified"
	}

	parts := strings.Split(ref, "/")
	name := parts[len(parts)-1]
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		return "Unspecified"
	}
	return name
}

// EndDateOrCurrent returns the end date, defaulting to "Current" for
// missions still flying.
func (m *MissionRecord) EndDateOrCurrent() string {
	if m.EndDate == "" {
		return "Current"
	}
	return m.EndDate
}

// StudyCount returns the number of related GLDS studies.
func (m *MissionRecord) StudyCount() int {
	return len(m.Parents.GLDSStudy)
}

// MissionIndex is the in-memory list of mission identifiers extracted from
// a bulk catalog fetch. It is built once per session, used only for local
// prefix/substring matching, and never mutated after construction.
type MissionIndex []string

// Autocomplete returns identifiers containing the query, capped at
// MaxAutocompleteSuggestions, preserving index order. An empty query
// yields nothing.
func (idx MissionIndex) Autocomplete(query string) []string {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return nil
	}

	var matches []string
	for _, id := range idx {
		if strings.Contains(strings.ToLower(id), lower) {
			matches = append(matches, id)
			if len(matches) >= MaxAutocompleteSuggestions {
				break
			}
		}
	}
	return matches
}

// FuzzySuggestions computes near-matches for a failed lookup using two
// tiers: identifiers whose lowercase form starts with the query, then
// identifiers that merely contain it and are not already in the first
// tier. Tiers are concatenated in index order and capped at
// MaxFuzzySuggestions total.
func (idx MissionIndex) FuzzySuggestions(query string) []string {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" || len(idx) == 0 {
		return nil
	}

	var startsWith, contains []string
	seen := make(map[string]bool)

	for _, id := range idx {
		if strings.HasPrefix(strings.ToLower(id), lower) {
			startsWith = append(startsWith, id)
			seen[id] = true
		}
	}
	for _, id := range idx {
		if seen[id] {
			continue
		}
		if strings.Contains(strings.ToLower(id), lower) {
			contains = append(contains, id)
		}
	}

	merged := append(startsWith, contains...)
	if len(merged) > MaxFuzzySuggestions {
		merged = merged[:MaxFuzzySuggestions]
	}
	return merged
}

// CatalogGroup is one letter-bucket of the alphabetical mission catalog.
type CatalogGroup struct {
	Letter   string
	Missions []string
}

// CatalogGroups groups the index by the uppercased first letter of each
// identifier. Letters are sorted ascending, identifiers within a letter
// are sorted ascending.
func (idx MissionIndex) CatalogGroups() []CatalogGroup {
	buckets := make(map[string][]string)
	for _, id := range idx {
		if id == "" {
			continue
		}
		letter := strings.ToUpper(id[:1])
		buckets[letter] = append(buckets[letter], id)
	}

	letters := make([]string, 0, len(buckets))
	for letter := range buckets {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	groups := make([]CatalogGroup, 0, len(letters))
	for _, letter := range letters {
		members := buckets[letter]
		sort.Strings(members)
		groups = append(groups, CatalogGroup{Letter: letter, Missions: members})
	}
	return groups
}

// IdentifierFromMissionURL extracts the URL-decoded mission identifier
// from an OSDR mission resource URL, e.g.
// "https://osdr.nasa.gov/geode-py/ws/api/mission/VSS%20Unity" -> "VSS Unity".
// Returns "" when the URL carries no /mission/ segment.
func IdentifierFromMissionURL(missionURL string) string {
	parts := strings.Split(missionURL, "/mission/")
	if len(parts) < 2 {
		return ""
	}
	identifier := parts[len(parts)-1]
	if decoded, err := url.PathUnescape(identifier); err == nil {
		identifier = decoded
	}
	return identifier
}

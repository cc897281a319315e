// Package intervention holds the road safety intervention record and the
// label-set comparison rules shared by listing and ranking.
package intervention

import "strings"

// Reference is an evidence source backing an intervention (WHO, FHWA, PIARC, ...).
type Reference struct {
	Source  string `json:"source"`
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
}

// Intervention is a road safety engineering treatment with metadata describing
// where and when it applies. Label slices (RoadTypes, Issues, Environments,
// UrbanRural, CoBenefits, Tags) keep their stored order but are always compared
// as normalized sets.
type Intervention struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	RoadTypes          []string           `json:"road_types"`
	Issues             []string           `json:"issues"`
	Environments       []string           `json:"environments"`
	CostLevel          string             `json:"cost_level"`
	Complexity         string             `json:"complexity"`
	Effectiveness      map[string]float64 `json:"effectiveness,omitempty"`
	Constraints        []string           `json:"constraints,omitempty"`
	SuitableSpeedRange []int              `json:"suitable_speed_range,omitempty"`
	UrbanRural         []string           `json:"urban_rural,omitempty"`
	CoBenefits         []string           `json:"co_benefits,omitempty"`
	References         []Reference        `json:"references"`
	Tags               []string           `json:"tags"`
}

// Normalize lowercases a label and trims surrounding whitespace.
// All label comparisons go through this; incidental casing or stray
// whitespace in stored records must not affect matching.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NormalizeSet returns the distinct normalized labels of a sequence.
func NormalizeSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[Normalize(l)] = struct{}{}
	}
	return set
}

// Overlap counts the distinct normalized labels common to both sequences.
func Overlap(a, b []string) int {
	sa := NormalizeSet(a)
	sb := NormalizeSet(b)
	n := 0
	for l := range sa {
		if _, ok := sb[l]; ok {
			n++
		}
	}
	return n
}

// ContainsLabel reports whether labels contains needle after normalization.
func ContainsLabel(labels []string, needle string) bool {
	target := Normalize(needle)
	for _, l := range labels {
		if Normalize(l) == target {
			return true
		}
	}
	return false
}

// SpeedInRange reports whether speed falls inclusively within rng.
// rng must be a [min, max] pair; any other shape never matches.
func SpeedInRange(speed int, rng []int) bool {
	if len(rng) != 2 {
		return false
	}
	return rng[0] <= speed && speed <= rng[1]
}

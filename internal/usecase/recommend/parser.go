package recommend

import (
	"strconv"
	"strings"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	domrec "github.com/roadsafe-cloud/roadsafe/internal/domain/recommend"
)

// Recognized vocabularies for free-text parsing. Order matters for road
// types: the first entry found in the prompt wins.
var knownRoadTypes = []string{
	"urban arterial", "urban collector", "local street", "rural highway", "rural arterial", "expressway",
	"village road", "residential street", "state highway", "national highway",
}

var knownIssues = []string{
	"speeding", "pedestrian crashes", "rear-end crashes", "run-off-road", "head-on", "intersection conflicts",
	"nighttime visibility", "overtaking", "wrong-way", "work zone safety", "bicyclist safety", "school zone safety",
}

var knownEnvironments = []string{
	"school zone", "market area", "mixed land use", "curve", "intersection", "midblock", "work zone",
	"bridge", "tunnel", "bus stop", "railway crossing",
}

// Plausible operating speeds in km/h; integers outside this range are
// ignored (house numbers, years, ...).
const (
	minSpeedKmh = 10
	maxSpeedKmh = 130
)

// ParsePrompt maps free text onto a structured filter by literal substring
// matching against the fixed vocabularies. Pure function, no side effects.
func ParsePrompt(prompt string) domrec.Filter {
	p := domiv.Normalize(prompt)

	var f domrec.Filter
	for _, rt := range knownRoadTypes {
		if strings.Contains(p, rt) {
			f.RoadType = rt
			break
		}
	}

	// "urban" wins when both appear.
	if strings.Contains(p, "urban") {
		f.UrbanRural = "urban"
	} else if strings.Contains(p, "rural") {
		f.UrbanRural = "rural"
	}

	for _, kw := range knownIssues {
		if strings.Contains(p, kw) {
			f.Issues = append(f.Issues, kw)
		}
	}
	for _, kw := range knownEnvironments {
		if strings.Contains(p, kw) {
			f.Environments = append(f.Environments, kw)
		}
	}

	f.SpeedKmh = parseSpeed(p)
	return f
}

// parseSpeed returns the first whitespace-delimited pure-integer token in
// the plausible speed range. "km/h" is collapsed to "kmh" first so that
// "40 km/h" tokenizes as ["40", "kmh"] rather than splitting on the slash.
func parseSpeed(p string) *int {
	for _, token := range strings.Fields(strings.ReplaceAll(p, "km/h", "kmh")) {
		if !isDigits(token) {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if n >= minSpeedKmh && n <= maxSpeedKmh {
			return &n
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

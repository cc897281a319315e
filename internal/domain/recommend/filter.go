// Package recommend holds the query filter and scored result types used by
// the recommendation pipeline.
package recommend

import (
	"github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

// Filter is the structured query an intervention is scored against.
// It lives for a single request: built from explicit request fields plus
// whatever the free-text parser extracted, then discarded.
type Filter struct {
	RoadType     string   `json:"road_type,omitempty"`
	Issues       []string `json:"issues,omitempty"`
	Environments []string `json:"environments,omitempty"`
	SpeedKmh     *int     `json:"speed_kmh,omitempty"`
	UrbanRural   string   `json:"urban_rural,omitempty"`
}

// IsEmpty reports whether no filter field is set.
func (f Filter) IsEmpty() bool {
	return f.RoadType == "" &&
		len(f.Issues) == 0 &&
		len(f.Environments) == 0 &&
		f.SpeedKmh == nil &&
		f.UrbanRural == ""
}

// Merge fills unset fields of f from parsed. Explicitly supplied fields win;
// for the multi-valued fields an empty slice counts as unset, so a caller
// cannot force "no issues filter" once a prompt matched something.
func (f Filter) Merge(parsed Filter) Filter {
	merged := f
	if merged.RoadType == "" {
		merged.RoadType = parsed.RoadType
	}
	if len(merged.Issues) == 0 {
		merged.Issues = parsed.Issues
	}
	if len(merged.Environments) == 0 {
		merged.Environments = parsed.Environments
	}
	if merged.SpeedKmh == nil {
		merged.SpeedKmh = parsed.SpeedKmh
	}
	if merged.UrbanRural == "" {
		merged.UrbanRural = parsed.UrbanRural
	}
	return merged
}

// Scored pairs an intervention with its match score and the human-readable
// reasons behind it. Built fresh on every ranking call, never stored.
type Scored struct {
	Intervention intervention.Intervention
	Score        float64
	Reasons      []string
}

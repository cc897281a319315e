package roadsafe

import (
	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	domrec "github.com/roadsafe-cloud/roadsafe/internal/domain/recommend"
)

// Reference is an evidence source backing an intervention.
type Reference struct {
	Source  string
	Title   string
	URL     string
	Excerpt string
}

// Intervention is a road safety treatment record.
type Intervention struct {
	ID                 string
	Name               string
	Description        string
	RoadTypes          []string
	Issues             []string
	Environments       []string
	CostLevel          string
	Complexity         string
	Effectiveness      map[string]float64
	Constraints        []string
	SuitableSpeedRange []int
	UrbanRural         []string
	CoBenefits         []string
	References         []Reference
	Tags               []string
}

// ListOptions narrows ListInterventions. Zero value lists everything
// up to the server-side default limit.
type ListOptions struct {
	RoadType    string
	Issue       string
	Environment string
	Limit       int
}

// RecommendQuery asks for ranked interventions. Explicit fields win over
// prompt-derived ones; nil TopK means the default of 10.
type RecommendQuery struct {
	Prompt       string
	RoadType     string
	Issues       []string
	Environments []string
	SpeedKmh     *int
	UrbanRural   string
	TopK         *int
}

// Filter is the merged query the ranking actually used.
type Filter struct {
	RoadType     string
	Issues       []string
	Environments []string
	SpeedKmh     *int
	UrbanRural   string
}

// Recommendation pairs an intervention with its match score and reasons.
type Recommendation struct {
	Intervention Intervention
	Score        float64
	Reasons      []string
}

// RecommendResult is the ranked answer plus the filter that produced it.
type RecommendResult struct {
	FiltersUsed Filter
	Items       []Recommendation
}

func toInternalIntervention(iv Intervention) domiv.Intervention {
	refs := make([]domiv.Reference, len(iv.References))
	for i, r := range iv.References {
		refs[i] = domiv.Reference{Source: r.Source, Title: r.Title, URL: r.URL, Excerpt: r.Excerpt}
	}
	return domiv.Intervention{
		ID:                 iv.ID,
		Name:               iv.Name,
		Description:        iv.Description,
		RoadTypes:          iv.RoadTypes,
		Issues:             iv.Issues,
		Environments:       iv.Environments,
		CostLevel:          iv.CostLevel,
		Complexity:         iv.Complexity,
		Effectiveness:      iv.Effectiveness,
		Constraints:        iv.Constraints,
		SuitableSpeedRange: iv.SuitableSpeedRange,
		UrbanRural:         iv.UrbanRural,
		CoBenefits:         iv.CoBenefits,
		References:         refs,
		Tags:               iv.Tags,
	}
}

func fromInternalIntervention(iv domiv.Intervention) Intervention {
	refs := make([]Reference, len(iv.References))
	for i, r := range iv.References {
		refs[i] = Reference{Source: r.Source, Title: r.Title, URL: r.URL, Excerpt: r.Excerpt}
	}
	return Intervention{
		ID:                 iv.ID,
		Name:               iv.Name,
		Description:        iv.Description,
		RoadTypes:          iv.RoadTypes,
		Issues:             iv.Issues,
		Environments:       iv.Environments,
		CostLevel:          iv.CostLevel,
		Complexity:         iv.Complexity,
		Effectiveness:      iv.Effectiveness,
		Constraints:        iv.Constraints,
		SuitableSpeedRange: iv.SuitableSpeedRange,
		UrbanRural:         iv.UrbanRural,
		CoBenefits:         iv.CoBenefits,
		References:         refs,
		Tags:               iv.Tags,
	}
}

func toInternalQueryFilter(q RecommendQuery) domrec.Filter {
	return domrec.Filter{
		RoadType:     q.RoadType,
		Issues:       q.Issues,
		Environments: q.Environments,
		SpeedKmh:     q.SpeedKmh,
		UrbanRural:   q.UrbanRural,
	}
}

func fromInternalFilter(f domrec.Filter) Filter {
	return Filter{
		RoadType:     f.RoadType,
		Issues:       f.Issues,
		Environments: f.Environments,
		SpeedKmh:     f.SpeedKmh,
		UrbanRural:   f.UrbanRural,
	}
}

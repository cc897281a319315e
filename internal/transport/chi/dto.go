package chi

import (
	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	domrec "github.com/roadsafe-cloud/roadsafe/internal/domain/recommend"
)

// errorCode identifies a client-visible error category.
type errorCode string

const (
	codeBadRequest         errorCode = "bad_request"
	codeValidationFailed   errorCode = "validation_failed"
	codeNotFound           errorCode = "not_found"
	codeStorageUnavailable errorCode = "storage_unavailable"
	codeInternalError      errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createInterventionResponse struct {
	ID string `json:"id"`
}

type interventionListResponse struct {
	Items []domiv.Intervention `json:"items"`
}

// recommendationRequest mirrors the /recommendations input contract.
// TopK is a pointer so an omitted field falls back to the server default
// while an explicit out-of-range value gets clamped.
type recommendationRequest struct {
	Prompt       string   `json:"prompt,omitempty"`
	RoadType     string   `json:"road_type,omitempty"`
	Issues       []string `json:"issues,omitempty"`
	Environments []string `json:"environments,omitempty"`
	SpeedKmh     *int     `json:"speed_kmh,omitempty"`
	UrbanRural   string   `json:"urban_rural,omitempty"`
	TopK         *int     `json:"top_k,omitempty"`
}

func (r recommendationRequest) filter() domrec.Filter {
	return domrec.Filter{
		RoadType:     r.RoadType,
		Issues:       r.Issues,
		Environments: r.Environments,
		SpeedKmh:     r.SpeedKmh,
		UrbanRural:   r.UrbanRural,
	}
}

// applicability summarizes where a recommended intervention applies.
type applicability struct {
	RoadTypes          []string `json:"road_types"`
	Issues             []string `json:"issues"`
	Environments       []string `json:"environments"`
	SuitableSpeedRange []int    `json:"suitable_speed_range,omitempty"`
	UrbanRural         []string `json:"urban_rural,omitempty"`
}

type recommendationItem struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Score         float64           `json:"score"`
	Reasons       []string          `json:"reasons"`
	Applicability applicability     `json:"applicability"`
	References    []domiv.Reference `json:"references"`
	Constraints   []string          `json:"constraints"`
	CoBenefits    []string          `json:"co_benefits"`
}

type recommendationResponse struct {
	FiltersUsed domrec.Filter        `json:"filters_used"`
	Count       int                  `json:"count"`
	Items       []recommendationItem `json:"items"`
}

func toRecommendationItem(s domrec.Scored) recommendationItem {
	iv := s.Intervention
	return recommendationItem{
		ID:          iv.ID,
		Name:        iv.Name,
		Description: iv.Description,
		Score:       s.Score,
		Reasons:     emptyIfNil(s.Reasons),
		Applicability: applicability{
			RoadTypes:          emptyIfNil(iv.RoadTypes),
			Issues:             emptyIfNil(iv.Issues),
			Environments:       emptyIfNil(iv.Environments),
			SuitableSpeedRange: iv.SuitableSpeedRange,
			UrbanRural:         iv.UrbanRural,
		},
		References:  emptyIfNil(iv.References),
		Constraints: emptyIfNil(iv.Constraints),
		CoBenefits:  emptyIfNil(iv.CoBenefits),
	}
}

// emptyIfNil keeps JSON arrays as [] instead of null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Package recommend turns a structured or free-text query into a ranked
// list of interventions: prompt parsing, filter merging, weighted scoring.
package recommend

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	domrec "github.com/roadsafe-cloud/roadsafe/internal/domain/recommend"
)

const (
	defaultTopK = 10
	maxTopK     = 50
	maxRefs     = 3
)

// Request carries a recommendation query: an optional free-text prompt,
// explicit filter fields, and the number of results wanted. TopK is nil
// when the caller did not ask for a specific count.
type Request struct {
	Prompt string
	Filter domrec.Filter
	TopK   *int
}

// Result is the ranked answer plus the merged filter that produced it.
type Result struct {
	FiltersUsed domrec.Filter
	Items       []domrec.Scored
}

// Service produces ranked recommendations over the full record set.
type Service struct {
	repo          Repository
	requestsTotal *prometheus.CounterVec
	rankedRecords prometheus.Histogram
}

// New creates a recommendation service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches Prometheus instrumentation.
func (s *Service) WithMetrics(requestsTotal *prometheus.CounterVec, rankedRecords prometheus.Histogram) *Service {
	s.requestsTotal = requestsTotal
	s.rankedRecords = rankedRecords
	return s
}

// Recommend merges explicit filters with prompt-derived ones, scores every
// stored intervention and returns the top results. Out-of-range top-k values
// are clamped, never rejected.
func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	filter := req.Filter
	if req.Prompt != "" {
		filter = filter.Merge(ParsePrompt(req.Prompt))
	}

	ivs, err := s.repo.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch interventions: %w", err)
	}

	if s.requestsTotal != nil {
		prompted := "no"
		if req.Prompt != "" {
			prompted = "yes"
		}
		s.requestsTotal.WithLabelValues(prompted).Inc()
	}
	if s.rankedRecords != nil {
		s.rankedRecords.Observe(float64(len(ivs)))
	}

	ranked := Rank(ivs, filter)

	topK := defaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	topK = clamp(topK, 1, maxTopK)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	for i := range ranked {
		ranked[i].Intervention = trimReferences(ranked[i].Intervention)
	}

	return Result{FiltersUsed: filter, Items: ranked}, nil
}

// trimReferences caps the references carried in a response payload.
func trimReferences(iv domiv.Intervention) domiv.Intervention {
	if len(iv.References) > maxRefs {
		iv.References = iv.References[:maxRefs]
	}
	return iv
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

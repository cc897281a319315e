// Package intervention handles intervention CRUD: validation, creation,
// listing with simple label filters.
package intervention

import (
	"context"
	"fmt"

	"github.com/roadsafe-cloud/roadsafe/internal/domain"
	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ListQuery narrows a listing to records carrying the given labels.
// Empty fields match everything.
type ListQuery struct {
	RoadType    string
	Issue       string
	Environment string
	Limit       int
}

// Service handles intervention record management.
type Service struct {
	repo Repository
}

// New creates an intervention service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new intervention, returning its ID.
func (s *Service) Create(ctx context.Context, iv domiv.Intervention) (string, error) {
	if err := validate(iv); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, iv)
	if err != nil {
		return "", fmt.Errorf("create intervention: %w", err)
	}
	return id, nil
}

// Get returns an intervention by ID.
func (s *Service) Get(ctx context.Context, id string) (domiv.Intervention, error) {
	iv, err := s.repo.Get(ctx, id)
	if err != nil {
		return domiv.Intervention{}, fmt.Errorf("get intervention: %w", err)
	}
	return iv, nil
}

// Delete removes an intervention by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete intervention: %w", err)
	}
	return nil
}

// List returns interventions matching the query, up to its limit.
// Labels match case-insensitively after trimming.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domiv.Intervention, error) {
	ivs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interventions: %w", err)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	out := make([]domiv.Intervention, 0, len(ivs))
	for _, iv := range ivs {
		if !matches(iv, q) {
			continue
		}
		out = append(out, iv)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Count returns the number of stored interventions.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count interventions: %w", err)
	}
	return n, nil
}

func matches(iv domiv.Intervention, q ListQuery) bool {
	if q.RoadType != "" && !domiv.ContainsLabel(iv.RoadTypes, q.RoadType) {
		return false
	}
	if q.Issue != "" && !domiv.ContainsLabel(iv.Issues, q.Issue) {
		return false
	}
	if q.Environment != "" && !domiv.ContainsLabel(iv.Environments, q.Environment) {
		return false
	}
	return true
}

func validate(iv domiv.Intervention) error {
	if iv.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if iv.Description == "" {
		return fmt.Errorf("description is required: %w", domain.ErrValidation)
	}
	if iv.CostLevel == "" {
		return fmt.Errorf("cost_level is required: %w", domain.ErrValidation)
	}
	if iv.Complexity == "" {
		return fmt.Errorf("complexity is required: %w", domain.ErrValidation)
	}
	if rng := iv.SuitableSpeedRange; len(rng) != 0 {
		if len(rng) != 2 {
			return fmt.Errorf("suitable_speed_range must be [min, max]: %w", domain.ErrValidation)
		}
		if rng[0] > rng[1] {
			return fmt.Errorf("suitable_speed_range min %d exceeds max %d: %w",
				rng[0], rng[1], domain.ErrValidation)
		}
	}
	return nil
}

package intervention

import (
	"context"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	createFn  func(ctx context.Context, iv domiv.Intervention) (string, error)
	getFn     func(ctx context.Context, id string) (domiv.Intervention, error)
	deleteFn  func(ctx context.Context, id string) error
	listAllFn func(ctx context.Context) ([]domiv.Intervention, error)
	countFn   func(ctx context.Context) (int, error)
}

func (m *mockRepo) Create(ctx context.Context, iv domiv.Intervention) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, iv)
	}
	return "id-1", nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (domiv.Intervention, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domiv.Intervention{}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRepo) ListAll(ctx context.Context) ([]domiv.Intervention, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func validIntervention() domiv.Intervention {
	return domiv.Intervention{
		Name:               "Raised Pedestrian Crossing",
		Description:        "A raised table at pedestrian crossing.",
		RoadTypes:          []string{"urban arterial"},
		Issues:             []string{"speeding"},
		Environments:       []string{"school zone"},
		CostLevel:          "medium",
		Complexity:         "medium",
		SuitableSpeedRange: []int{20, 50},
	}
}

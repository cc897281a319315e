package recommend

import (
	"context"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	listAllFn func(ctx context.Context) ([]domiv.Intervention, error)
}

func (m *mockRepo) ListAll(ctx context.Context) ([]domiv.Intervention, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

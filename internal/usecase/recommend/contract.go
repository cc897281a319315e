package recommend

import (
	"context"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

// Repository defines the storage contract for the recommendation pipeline.
// No filter pushdown: the service re-scores everything in memory.
type Repository interface {
	ListAll(ctx context.Context) ([]domiv.Intervention, error)
}

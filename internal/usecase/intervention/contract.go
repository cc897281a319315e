package intervention

import (
	"context"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

// Repository defines the storage contract for intervention records.
type Repository interface {
	Create(ctx context.Context, iv domiv.Intervention) (string, error)
	Get(ctx context.Context, id string) (domiv.Intervention, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domiv.Intervention, error)
	Count(ctx context.Context) (int, error)
}

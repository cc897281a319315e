// Package seed inserts a minimal demo dataset into an empty store.
package seed

import (
	"context"

	"go.uber.org/zap"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

// Repository is the storage contract needed for seeding.
type Repository interface {
	Create(ctx context.Context, iv domiv.Intervention) (string, error)
	Count(ctx context.Context) (int, error)
}

// IfEmpty inserts the demo dataset when the store holds no interventions.
// Failures are logged and swallowed so a missing or slow database never
// blocks startup.
func IfEmpty(ctx context.Context, repo Repository, logger *zap.Logger) {
	count, err := repo.Count(ctx)
	if err != nil {
		logger.Warn("seed skipped: store not reachable", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	seeded := 0
	for _, iv := range demoDataset() {
		if _, err := repo.Create(ctx, iv); err != nil {
			logger.Warn("seed insert failed", zap.String("name", iv.Name), zap.Error(err))
			continue
		}
		seeded++
	}
	logger.Info("seeded demo dataset", zap.Int("inserted", seeded))
}

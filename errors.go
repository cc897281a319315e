package roadsafe

import "github.com/roadsafe-cloud/roadsafe/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrValidation         = domain.ErrValidation
	ErrStorageUnavailable = domain.ErrStorageUnavailable
)

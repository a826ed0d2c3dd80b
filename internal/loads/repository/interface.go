package repository

import (
	"context"

	"axle-assist/internal/loads"
	"axle-assist/internal/model"
)

// LoadRepository fetches normalized load listings for sanitized search
// parameters. Implementations own the wire-format-to-LoadCard mapping;
// callers never see raw upstream records.
type LoadRepository interface {
	SearchLoads(ctx context.Context, params loads.SearchParams) ([]model.LoadCard, error)
}

package repository

import (
	"context"

	"charlygames/internal/domain/entity"
)

type PriceBandRepository interface {
	// List returns all bands ordered ascending by min. The table is expected to
	// stay small, so there is no pagination.
	List(ctx context.Context, ordered bool) ([]*entity.PriceBand, error)
	GetByID(ctx context.Context, id string) (*entity.PriceBand, error)
	Create(ctx context.Context, band *entity.PriceBand) error
	// Update applies only the changed fields and returns the merged row.
	Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.PriceBand, error)
	Delete(ctx context.Context, id string) error
}

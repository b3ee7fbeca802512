package repository

import (
	"context"

	"charlygames/internal/domain/entity"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	ListByGameID(ctx context.Context, gameID string) ([]*entity.Rating, error)
	ListAll(ctx context.Context) ([]*entity.Rating, error)
}

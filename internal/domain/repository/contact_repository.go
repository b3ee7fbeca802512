package repository

import (
	"context"

	"charlygames/internal/domain/entity"
)

type ContactRepository interface {
	Get(ctx context.Context) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
}

package repository

import (
	"context"

	"charlygames/internal/domain/entity"
)

type SubscriberRepository interface {
	// Upsert inserts or refreshes the row keyed by the subscriber's email.
	Upsert(ctx context.Context, sub *entity.Subscriber) error
	List(ctx context.Context, sortBy string, ascending bool) ([]*entity.Subscriber, error)
}

package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

type firestoreSubscriberRepository struct {
	client *firestore.Client
}

func NewFirestoreSubscriberRepository(client *firestore.Client) repository.SubscriberRepository {
	return &firestoreSubscriberRepository{
		client: client,
	}
}

// Upsert keys the document by email, so re-subscribing replaces the existing row
// with the latest name/whatsapp instead of inserting a duplicate.
func (r *firestoreSubscriberRepository) Upsert(ctx context.Context, sub *entity.Subscriber) error {
	_, err := r.client.Collection("subscribers").Doc(sub.Email).Set(ctx, sub)
	if err != nil {
		return errors.Internal("Failed to upsert subscriber", err)
	}

	return nil
}

func (r *firestoreSubscriberRepository) List(ctx context.Context, sortBy string, ascending bool) ([]*entity.Subscriber, error) {
	dir := firestore.Desc
	if ascending {
		dir = firestore.Asc
	}

	switch sortBy {
	case "name", "email", "whatsapp", "subscriptionDate":
	default:
		sortBy = "name"
	}

	iter := r.client.Collection("subscribers").OrderBy(sortBy, dir).Documents(ctx)

	var subs []*entity.Subscriber
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate subscribers", err)
		}

		var sub entity.Subscriber
		if err := doc.DataTo(&sub); err != nil {
			return nil, errors.Internal("Failed to parse subscriber data", err)
		}
		subs = append(subs, &sub)
	}

	return subs, nil
}

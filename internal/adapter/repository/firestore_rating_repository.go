package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func (r *firestoreRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		doc := r.client.Collection("game_ratings").NewDoc()
		rating.ID = doc.ID
	}

	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("game_ratings").Doc(rating.ID).Set(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to create rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) ListByGameID(ctx context.Context, gameID string) ([]*entity.Rating, error) {
	iter := r.client.Collection("game_ratings").Where("gameId", "==", gameID).Documents(ctx)
	return collectRatings(iter)
}

func (r *firestoreRatingRepository) ListAll(ctx context.Context) ([]*entity.Rating, error) {
	iter := r.client.Collection("game_ratings").Documents(ctx)
	return collectRatings(iter)
}

func collectRatings(iter *firestore.DocumentIterator) ([]*entity.Rating, error) {
	var ratings []*entity.Rating
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate ratings", err)
		}

		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

type firestorePriceBandRepository struct {
	client *firestore.Client
}

func NewFirestorePriceBandRepository(client *firestore.Client) repository.PriceBandRepository {
	return &firestorePriceBandRepository{
		client: client,
	}
}

func (r *firestorePriceBandRepository) List(ctx context.Context, ordered bool) ([]*entity.PriceBand, error) {
	query := r.client.Collection("price").Query
	if ordered {
		query = query.OrderBy("min", firestore.Asc)
	}

	iter := query.Documents(ctx)
	var bands []*entity.PriceBand
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate price bands", err)
		}

		var band entity.PriceBand
		if err := doc.DataTo(&band); err != nil {
			return nil, errors.Internal("Failed to parse price band data", err)
		}
		bands = append(bands, &band)
	}

	return bands, nil
}

func (r *firestorePriceBandRepository) GetByID(ctx context.Context, id string) (*entity.PriceBand, error) {
	doc, err := r.client.Collection("price").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Price band", err)
		}
		return nil, errors.Internal("Failed to get price band", err)
	}

	var band entity.PriceBand
	if err := doc.DataTo(&band); err != nil {
		return nil, errors.Internal("Failed to parse price band data", err)
	}

	return &band, nil
}

func (r *firestorePriceBandRepository) Create(ctx context.Context, band *entity.PriceBand) error {
	if band.ID == "" {
		doc := r.client.Collection("price").NewDoc()
		band.ID = doc.ID
	}

	_, err := r.client.Collection("price").Doc(band.ID).Set(ctx, band)
	if err != nil {
		return errors.Internal("Failed to create price band", err)
	}

	return nil
}

// Update sends only the changed fields, then re-reads the row so the caller gets
// the merged result.
func (r *firestorePriceBandRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.PriceBand, error) {
	doc := r.client.Collection("price").Doc(id)

	updates := make([]firestore.Update, 0, len(changes))
	for field, value := range changes {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}

	if _, err := doc.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Price band", err)
		}
		return nil, errors.Internal("Failed to update price band", err)
	}

	snap, err := doc.Get(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to get price band", err)
	}

	var band entity.PriceBand
	if err := snap.DataTo(&band); err != nil {
		return nil, errors.Internal("Failed to parse price band data", err)
	}

	return &band, nil
}

func (r *firestorePriceBandRepository) Delete(ctx context.Context, id string) error {
	doc := r.client.Collection("price").Doc(id)

	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Price band", err)
		}
		return errors.Internal("Failed to get price band", err)
	}

	if _, err := doc.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete price band", err)
	}

	return nil
}

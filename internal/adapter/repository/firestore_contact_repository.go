package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

// The contact record is a singleton held in a fixed document.
const contactDocID = "main"

type firestoreContactRepository struct {
	client *firestore.Client
}

func NewFirestoreContactRepository(client *firestore.Client) repository.ContactRepository {
	return &firestoreContactRepository{
		client: client,
	}
}

func (r *firestoreContactRepository) Get(ctx context.Context) (*entity.Contact, error) {
	doc, err := r.client.Collection("contact").Doc(contactDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Contact info", err)
		}
		return nil, errors.Internal("Failed to get contact info", err)
	}

	var contact entity.Contact
	if err := doc.DataTo(&contact); err != nil {
		return nil, errors.Internal("Failed to parse contact data", err)
	}

	return &contact, nil
}

func (r *firestoreContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	_, err := r.client.Collection("contact").Doc(contactDocID).Set(ctx, contact)
	if err != nil {
		return errors.Internal("Failed to update contact info", err)
	}

	return nil
}

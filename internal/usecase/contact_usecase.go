package usecase

import (
	"context"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
)

type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
	}
}

func (uc *ContactUseCase) Get(ctx context.Context) (*entity.Contact, error) {
	return uc.contactRepo.Get(ctx)
}

func (uc *ContactUseCase) Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

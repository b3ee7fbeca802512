package usecase

import (
	"context"
	"strings"
	"time"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

type SubscriberUseCase struct {
	subRepo repository.SubscriberRepository
}

func NewSubscriberUseCase(subRepo repository.SubscriberRepository) *SubscriberUseCase {
	return &SubscriberUseCase{
		subRepo: subRepo,
	}
}

type SubscribeInput struct {
	Name     string
	Email    string
	Whatsapp string
}

// Subscribe upserts the contact record keyed by email. Re-subscribing refreshes
// name, whatsapp and the subscription date on the existing row.
func (uc *SubscriberUseCase) Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, errors.BadRequest("Email is required", nil)
	}

	sub := &entity.Subscriber{
		Name:             strings.TrimSpace(input.Name),
		Email:            email,
		Whatsapp:         strings.TrimSpace(input.Whatsapp),
		WantsNewsletter:  true,
		SubscriptionDate: time.Now(),
	}

	if err := uc.subRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

func (uc *SubscriberUseCase) List(ctx context.Context, sortBy string, ascending bool) ([]*entity.Subscriber, error) {
	return uc.subRepo.List(ctx, sortBy, ascending)
}

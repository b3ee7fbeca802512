package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"charlygames/internal/domain/entity"
)

// fakeSubscriberRepo upserts into a map keyed by email, the same contract the
// gateway-backed repository provides via document ids.
type fakeSubscriberRepo struct {
	rows map[string]*entity.Subscriber
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{rows: make(map[string]*entity.Subscriber)}
}

func (f *fakeSubscriberRepo) Upsert(ctx context.Context, sub *entity.Subscriber) error {
	f.rows[sub.Email] = sub
	return nil
}

func (f *fakeSubscriberRepo) List(ctx context.Context, sortBy string, ascending bool) ([]*entity.Subscriber, error) {
	var out []*entity.Subscriber
	for _, s := range f.rows {
		out = append(out, s)
	}
	return out, nil
}

func TestSubscribeCreatesRow(t *testing.T) {
	repo := newFakeSubscriberRepo()
	uc := NewSubscriberUseCase(repo)

	sub, err := uc.Subscribe(context.Background(), SubscribeInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Whatsapp: "+54911111111",
	})

	assert.NoError(t, err)
	assert.True(t, sub.WantsNewsletter)
	assert.False(t, sub.SubscriptionDate.IsZero())
	assert.Len(t, repo.rows, 1)
}

func TestSubscribeTwiceKeepsOneRowWithLatestValues(t *testing.T) {
	repo := newFakeSubscriberRepo()
	uc := NewSubscriberUseCase(repo)

	_, err := uc.Subscribe(context.Background(), SubscribeInput{
		Name: "Ana", Email: "ana@example.com", Whatsapp: "+54911111111",
	})
	assert.NoError(t, err)

	_, err = uc.Subscribe(context.Background(), SubscribeInput{
		Name: "Ana Maria", Email: "ana@example.com", Whatsapp: "+54922222222",
	})
	assert.NoError(t, err)

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, "Ana Maria", repo.rows["ana@example.com"].Name)
	assert.Equal(t, "+54922222222", repo.rows["ana@example.com"].Whatsapp)
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := newFakeSubscriberRepo()
	uc := NewSubscriberUseCase(repo)

	_, err := uc.Subscribe(context.Background(), SubscribeInput{Email: "Ana@Example.COM ", Whatsapp: "1"})
	assert.NoError(t, err)
	_, err = uc.Subscribe(context.Background(), SubscribeInput{Email: " ana@example.com", Whatsapp: "2"})
	assert.NoError(t, err)

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, "2", repo.rows["ana@example.com"].Whatsapp)
}

func TestSubscribeRejectsEmptyEmail(t *testing.T) {
	uc := NewSubscriberUseCase(newFakeSubscriberRepo())

	_, err := uc.Subscribe(context.Background(), SubscribeInput{Name: "Ana", Email: "   "})

	assert.Error(t, err)
}

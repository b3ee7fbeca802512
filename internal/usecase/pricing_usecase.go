package usecase

import (
	"context"
	"math"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
)

// SuggestPrice returns the price of the first band containing weight, scanning
// bands in the order they were fetched. First match wins; overlaps are not
// resolved and gaps yield 0. A NaN or infinite weight, or an empty band list,
// also yields 0. Never fails: bad input degrades to a free price rather than
// blocking the admin form.
func SuggestPrice(weight float64, bands []*entity.PriceBand) float64 {
	if len(bands) == 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0
	}

	for _, band := range bands {
		if weight >= band.Min && weight <= band.Max {
			return band.Price
		}
	}

	return 0
}

type PricingUseCase struct {
	bandRepo repository.PriceBandRepository
}

func NewPricingUseCase(bandRepo repository.PriceBandRepository) *PricingUseCase {
	return &PricingUseCase{
		bandRepo: bandRepo,
	}
}

// ListBands returns the rule table ordered ascending by min, the display order
// of the admin editor.
func (uc *PricingUseCase) ListBands(ctx context.Context) ([]*entity.PriceBand, error) {
	return uc.bandRepo.List(ctx, true)
}

// CreateBand inserts a new band with all-zero defaults and returns the stored
// row, which the editor appends to its list.
func (uc *PricingUseCase) CreateBand(ctx context.Context) (*entity.PriceBand, error) {
	band := &entity.PriceBand{Min: 0, Max: 0, Price: 0}
	if err := uc.bandRepo.Create(ctx, band); err != nil {
		return nil, err
	}
	return band, nil
}

type UpdateBandInput struct {
	Min   *float64
	Max   *float64
	Price *float64
}

// UpdateBand commits a row's pending edits: only the fields that changed are
// sent, and the merged row comes back. A commit with no changed fields is a
// no-op and returns the current row without writing.
func (uc *PricingUseCase) UpdateBand(ctx context.Context, id string, input UpdateBandInput) (*entity.PriceBand, error) {
	changes := make(map[string]interface{})
	if input.Min != nil {
		changes["min"] = *input.Min
	}
	if input.Max != nil {
		changes["max"] = *input.Max
	}
	if input.Price != nil {
		changes["price"] = *input.Price
	}

	if len(changes) == 0 {
		return uc.bandRepo.GetByID(ctx, id)
	}

	return uc.bandRepo.Update(ctx, id, changes)
}

func (uc *PricingUseCase) DeleteBand(ctx context.Context, id string) error {
	return uc.bandRepo.Delete(ctx, id)
}

// Suggest evaluates the current rule table against a weight. Bands are fetched
// in storage order, matching the form's own fetch, which applies no sort.
func (uc *PricingUseCase) Suggest(ctx context.Context, weight float64) (float64, error) {
	bands, err := uc.bandRepo.List(ctx, false)
	if err != nil {
		return 0, err
	}
	return SuggestPrice(weight, bands), nil
}

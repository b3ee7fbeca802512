package usecase

import (
	"context"
	"math"
	"sort"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

// AverageRating is the arithmetic mean of the given votes rounded to one
// decimal, half away from zero. Zero votes average to 0.
func AverageRating(ratings []*entity.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}

	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	gameRepo   repository.GameRepository
}

func NewRatingUseCase(ratingRepo repository.RatingRepository, gameRepo repository.GameRepository) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		gameRepo:   gameRepo,
	}
}

// SubmitRating records one vote. The collection is append-only and carries no
// voter identity, so repeat votes land as new rows.
func (uc *RatingUseCase) SubmitRating(ctx context.Context, gameID string, value int) error {
	if value < 1 || value > 5 {
		return errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	return uc.ratingRepo.Create(ctx, &entity.Rating{
		GameID: gameID,
		Rating: value,
	})
}

// GameAverage re-reads all votes for the entry and computes the mean
// client-side.
func (uc *RatingUseCase) GameAverage(ctx context.Context, gameID string) (float64, int, error) {
	ratings, err := uc.ratingRepo.ListByGameID(ctx, gameID)
	if err != nil {
		return 0, 0, err
	}

	return AverageRating(ratings), len(ratings), nil
}

// TopRated ranks entries by average vote, descending, breaking ties by vote
// count. Entries whose game row has since been deleted are dropped from the
// ranking.
func (uc *RatingUseCase) TopRated(ctx context.Context, limit int) ([]*entity.RatedGame, error) {
	if limit <= 0 {
		limit = 5
	}

	ratings, err := uc.ratingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byGame := make(map[string][]*entity.Rating)
	for _, r := range ratings {
		byGame[r.GameID] = append(byGame[r.GameID], r)
	}

	ranked := make([]*entity.RatedGame, 0, len(byGame))
	for gameID, votes := range byGame {
		game, err := uc.gameRepo.GetByID(ctx, gameID)
		if err != nil {
			continue
		}
		ranked = append(ranked, &entity.RatedGame{
			Game:          game,
			AverageRating: AverageRating(votes),
			RatingCount:   len(votes),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		return ranked[i].RatingCount > ranked[j].RatingCount
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

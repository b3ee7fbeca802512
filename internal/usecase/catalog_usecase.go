package usecase

import (
	"context"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
)

// CatalogUseCase serves the explore list: paginated, filtered and sorted reads
// delegated to the gateway, separate from the store's full-table cache.
type CatalogUseCase struct {
	gameRepo repository.GameRepository
	store    *CatalogStore
}

func NewCatalogUseCase(gameRepo repository.GameRepository, store *CatalogStore) *CatalogUseCase {
	return &CatalogUseCase{
		gameRepo: gameRepo,
		store:    store,
	}
}

type BrowseInput struct {
	Category string
	Search   string
	Sort     string
	Limit    int
	Offset   int
}

func (uc *CatalogUseCase) Browse(ctx context.Context, input BrowseInput) ([]*entity.Game, error) {
	switch input.Sort {
	case repository.SortReleaseAsc, repository.SortAlphabetical,
		repository.SortYearAsc, repository.SortYearDesc:
	default:
		input.Sort = repository.SortDefault
	}

	games, err := uc.gameRepo.List(ctx, repository.GameQuery{
		Category: input.Category,
		Search:   input.Search,
		Sort:     input.Sort,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, err
	}

	if games == nil {
		games = []*entity.Game{}
	}
	return games, nil
}

func (uc *CatalogUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return uc.gameRepo.GetByID(ctx, id)
}

// Store exposes the shared catalog cache for the views that read the full list.
func (uc *CatalogUseCase) Store() *CatalogStore {
	return uc.store
}

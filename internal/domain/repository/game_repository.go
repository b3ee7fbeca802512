package repository

import (
	"context"

	"charlygames/internal/domain/entity"
)

// Sort selectors accepted by GameQuery. Default is reverse-chronological.
const (
	SortDefault      = "default"
	SortReleaseAsc   = "release_asc"
	SortAlphabetical = "alphabetical"
	SortYearAsc      = "year_asc"
	SortYearDesc     = "year_desc"
)

// GameQuery describes one explore-list page: category equality filter,
// case-insensitive title substring search, sort selector and offset pagination.
type GameQuery struct {
	Category string
	Search   string
	Sort     string
	Limit    int
	Offset   int
}

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	ListAll(ctx context.Context) ([]*entity.Game, error)
	List(ctx context.Context, q GameQuery) ([]*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
	Delete(ctx context.Context, id string) error
}

// GameWatcher is the change-notification side of the gateway: fn runs once per
// observed mutation to the games table until ctx is cancelled.
type GameWatcher interface {
	Watch(ctx context.Context, fn func()) error
}

package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

// fileGameRepository persists the catalog to a local JSON document. It is the
// fallback data-access mode when no hosted gateway is configured, and the test
// double of record for everything built on GameRepository.
type fileGameRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileGameRepository(path string) *fileGameRepository {
	return &fileGameRepository{
		path: path,
	}
}

var _ repository.GameRepository = (*fileGameRepository)(nil)

func (r *fileGameRepository) load() ([]*entity.Game, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.Game{}, nil
		}
		return nil, errors.Internal("Failed to read games file", err)
	}

	var games []*entity.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, errors.Internal("Failed to parse games file", err)
	}

	return games, nil
}

func (r *fileGameRepository) save(games []*entity.Game) error {
	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return errors.Internal("Failed to encode games", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Internal("Failed to create data directory", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.Internal("Failed to write games file", err)
	}

	return nil
}

func (r *fileGameRepository) Create(ctx context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	games, err := r.load()
	if err != nil {
		return err
	}

	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now()
	}

	games = append(games, game)
	return r.save(games)
}

func (r *fileGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	games, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, game := range games {
		if game.ID == id {
			return game, nil
		}
	}

	return nil, errors.NotFound("Game", nil)
}

func (r *fileGameRepository) ListAll(ctx context.Context) ([]*entity.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *fileGameRepository) List(ctx context.Context, q repository.GameQuery) ([]*entity.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	games, err := r.load()
	if err != nil {
		return nil, err
	}

	var matched []*entity.Game
	needle := strings.ToLower(q.Search)
	for _, game := range games {
		if q.Category != "" && game.Category != q.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(game.Title), needle) {
			continue
		}
		matched = append(matched, game)
	}

	sortGames(matched, q.Sort)

	start := q.Offset
	end := q.Offset + q.Limit
	if start >= len(matched) {
		return []*entity.Game{}, nil
	}
	if q.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], nil
}

func sortGames(games []*entity.Game, by string) {
	switch by {
	case repository.SortReleaseAsc:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		})
	case repository.SortAlphabetical:
		sort.SliceStable(games, func(i, j int) bool {
			return strings.ToLower(games[i].Title) < strings.ToLower(games[j].Title)
		})
	case repository.SortYearAsc:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Gotty < games[j].Gotty
		})
	case repository.SortYearDesc:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Gotty > games[j].Gotty
		})
	default:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].CreatedAt.After(games[j].CreatedAt)
		})
	}
}

func (r *fileGameRepository) Update(ctx context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	games, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range games {
		if existing.ID == game.ID {
			if game.CreatedAt.IsZero() {
				game.CreatedAt = existing.CreatedAt
			}
			games[i] = game
			return r.save(games)
		}
	}

	return errors.NotFound("Game", nil)
}

func (r *fileGameRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	games, err := r.load()
	if err != nil {
		return err
	}

	for i, game := range games {
		if game.ID == id {
			games = append(games[:i], games[i+1:]...)
			return r.save(games)
		}
	}

	return errors.NotFound("Game", nil)
}

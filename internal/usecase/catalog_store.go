package usecase

import (
	"context"
	"sort"
	"sync"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/logger"
)

// StoreStatus is the catalog store's load state. Loading is re-entered on every
// mutation and on every change-feed event; there is no error state, a failed
// refresh settles back to ready with possibly-stale data.
type StoreStatus string

const (
	StoreIdle    StoreStatus = "idle"
	StoreLoading StoreStatus = "loading"
	StoreReady   StoreStatus = "ready"
)

// CatalogStore is the single source of truth for the full catalog list used by
// non-paginated views. Mutations write through the repository and patch the
// local cache immediately; a change-feed listener reconciles by refetching the
// whole table, so every open session converges even when the optimistic patch
// and the remote state drift apart.
type CatalogStore struct {
	repo repository.GameRepository

	mu     sync.RWMutex
	games  []*entity.Game
	status StoreStatus

	onChange func()
}

func NewCatalogStore(repo repository.GameRepository) *CatalogStore {
	return &CatalogStore{
		repo:   repo,
		status: StoreIdle,
	}
}

// OnChange registers a callback invoked after every local cache change, used to
// push change events to connected sessions. Must be set before Start.
func (s *CatalogStore) OnChange(fn func()) {
	s.onChange = fn
}

func (s *CatalogStore) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *CatalogStore) Status() StoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Games returns a copy of the cached list.
func (s *CatalogStore) Games() []*entity.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*entity.Game, len(s.games))
	copy(games, s.games)
	return games
}

// Recent returns the n most recently created entries, newest first.
func (s *CatalogStore) Recent(n int) []*entity.Game {
	games := s.Games()
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	if n < len(games) {
		games = games[:n]
	}
	return games
}

// Categories returns the distinct categories present in the cache, in first-seen
// order.
func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, game := range s.games {
		if game.Category == "" || seen[game.Category] {
			continue
		}
		seen[game.Category] = true
		categories = append(categories, game.Category)
	}
	return categories
}

func (s *CatalogStore) setStatus(status StoreStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Refresh refetches the entire table. On failure the previous cache stays in
// place and the store still reports ready.
func (s *CatalogStore) Refresh(ctx context.Context) error {
	s.setStatus(StoreLoading)

	games, err := s.repo.ListAll(ctx)
	if err != nil {
		logger.Error("Catalog refresh failed: %v", err)
		s.setStatus(StoreReady)
		return err
	}

	s.mu.Lock()
	s.games = games
	s.status = StoreReady
	s.mu.Unlock()

	return nil
}

// Add inserts a new entry and appends the row that came back with its
// server-assigned id and timestamp.
func (s *CatalogStore) Add(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	s.setStatus(StoreLoading)

	if err := s.repo.Create(ctx, game); err != nil {
		s.setStatus(StoreReady)
		return nil, err
	}

	s.mu.Lock()
	s.games = append(s.games, game)
	s.status = StoreReady
	s.mu.Unlock()

	s.notify()
	return game, nil
}

// Update replaces the full row remotely and patches the cache in place, so a
// save is visible to reads immediately rather than only after the change feed
// delivers.
func (s *CatalogStore) Update(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	s.setStatus(StoreLoading)

	// The creation timestamp is immutable and edit forms do not carry it; fill it
	// from the cached row before the remote write so the stored row keeps it too.
	if game.CreatedAt.IsZero() {
		s.mu.RLock()
		for _, existing := range s.games {
			if existing.ID == game.ID {
				game.CreatedAt = existing.CreatedAt
				break
			}
		}
		s.mu.RUnlock()
	}

	if err := s.repo.Update(ctx, game); err != nil {
		s.setStatus(StoreReady)
		return nil, err
	}

	s.mu.Lock()
	for i, existing := range s.games {
		if existing.ID == game.ID {
			s.games[i] = game
			break
		}
	}
	s.status = StoreReady
	s.mu.Unlock()

	s.notify()
	return game, nil
}

// Delete removes the row remotely and splices it out of the cache.
func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	s.setStatus(StoreLoading)

	if err := s.repo.Delete(ctx, id); err != nil {
		s.setStatus(StoreReady)
		return err
	}

	s.mu.Lock()
	for i, game := range s.games {
		if game.ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			break
		}
	}
	s.status = StoreReady
	s.mu.Unlock()

	s.notify()
	return nil
}

// Start loads the initial cache and, when the repository supports change
// notifications, keeps it reconciled from the feed in a background goroutine.
func (s *CatalogStore) Start(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		logger.Warn("Initial catalog load failed, starting with empty cache")
	}

	watcher, ok := s.repo.(repository.GameWatcher)
	if !ok {
		return
	}

	go func() {
		err := watcher.Watch(ctx, func() {
			s.Refresh(ctx)
			s.notify()
		})
		if err != nil {
			logger.Error("Catalog change feed stopped: %v", err)
		}
	}()
}

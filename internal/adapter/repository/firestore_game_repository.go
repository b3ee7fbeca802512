package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) *firestoreGameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

var _ repository.GameRepository = (*firestoreGameRepository)(nil)
var _ repository.GameWatcher = (*firestoreGameRepository)(nil)

func (r *firestoreGameRepository) Create(ctx context.Context, game *entity.Game) error {
	if game.ID == "" {
		doc := r.client.Collection("games").NewDoc()
		game.ID = doc.ID
	}

	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("games").Doc(game.ID).Set(ctx, game)
	if err != nil {
		return errors.Internal("Failed to create game", err)
	}

	return nil
}

func (r *firestoreGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := r.client.Collection("games").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Game", err)
		}
		return nil, errors.Internal("Failed to get game", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return nil, errors.Internal("Failed to parse game data", err)
	}

	return &game, nil
}

// ListAll fetches the entire table with the gateway's default ordering; it feeds
// the catalog store, which keeps the full list in memory.
func (r *firestoreGameRepository) ListAll(ctx context.Context) ([]*entity.Game, error) {
	iter := r.client.Collection("games").Documents(ctx)

	var games []*entity.Game
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate games", err)
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse game data", err)
		}
		games = append(games, &game)
	}

	return games, nil
}

func sortOrder(sort string) (string, firestore.Direction) {
	switch sort {
	case repository.SortReleaseAsc:
		return "createdAt", firestore.Asc
	case repository.SortAlphabetical:
		return "title", firestore.Asc
	case repository.SortYearAsc:
		return "gotty", firestore.Asc
	case repository.SortYearDesc:
		return "gotty", firestore.Desc
	default:
		return "createdAt", firestore.Desc
	}
}

func (r *firestoreGameRepository) List(ctx context.Context, q repository.GameQuery) ([]*entity.Game, error) {
	query := r.client.Collection("games").Query

	if q.Category != "" {
		query = query.Where("category", "==", q.Category)
	}

	field, dir := sortOrder(q.Sort)
	query = query.OrderBy(field, dir)

	// Firestore has no substring operator, so a title search fetches the ordered
	// candidates and filters client-side before paginating.
	if q.Search != "" {
		return r.searchByTitle(ctx, query, q)
	}

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	iter := query.Documents(ctx)
	var games []*entity.Game
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate games", err)
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse game data", err)
		}
		games = append(games, &game)
	}

	return games, nil
}

func (r *firestoreGameRepository) searchByTitle(ctx context.Context, query firestore.Query, q repository.GameQuery) ([]*entity.Game, error) {
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to search games", err)
	}

	needle := strings.ToLower(q.Search)

	var matched []*entity.Game
	for _, doc := range docs {
		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(game.Title), needle) {
			matched = append(matched, &game)
		}
	}

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

func (r *firestoreGameRepository) Update(ctx context.Context, game *entity.Game) error {
	doc := r.client.Collection("games").Doc(game.ID)

	snapshot, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Game", err)
		}
		return errors.Internal("Failed to get game", err)
	}

	// Set replaces the whole document; the creation timestamp is owned by the
	// gateway and must survive a full-row update.
	if game.CreatedAt.IsZero() {
		var existing entity.Game
		if err := snapshot.DataTo(&existing); err != nil {
			return errors.Internal("Failed to parse game data", err)
		}
		game.CreatedAt = existing.CreatedAt
	}

	if _, err := doc.Set(ctx, game); err != nil {
		return errors.Internal("Failed to update game", err)
	}

	return nil
}

func (r *firestoreGameRepository) Delete(ctx context.Context, id string) error {
	doc := r.client.Collection("games").Doc(id)

	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Game", err)
		}
		return errors.Internal("Failed to get game", err)
	}

	if _, err := doc.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete game", err)
	}

	return nil
}

// Watch subscribes to the games change feed and invokes fn on every mutation.
// The first snapshot describes the current state, not a change, and is skipped.
// Blocks until ctx is cancelled.
func (r *firestoreGameRepository) Watch(ctx context.Context, fn func()) error {
	snapshots := r.client.Collection("games").Snapshots(ctx)
	defer snapshots.Stop()

	first := true
	for {
		_, err := snapshots.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil
			}
			return errors.Internal("Games change feed failed", err)
		}

		if first {
			first = false
			continue
		}
		fn()
	}
}

package entity

import (
	"time"
)

// Rating is one vote cast against a game. Append-only; there is no voter
// identity, so nothing prevents repeat votes beyond client-side state.
type Rating struct {
	ID        string    `json:"id" firestore:"id"`
	GameID    string    `json:"game_id" firestore:"gameId"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// RatedGame is one row of the top-rated ranking.
type RatedGame struct {
	Game          *Game   `json:"game"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

package entity

import (
	"time"
)

// Game is one catalog listing. Requirement fields are free-form text picked from
// recommended option lists on the admin form; none of them are enforced here.
type Game struct {
	ID          string  `json:"id" firestore:"id"`
	Title       string  `json:"title" firestore:"title"`
	Description string  `json:"description" firestore:"description"`
	Category    string  `json:"category" firestore:"category"`
	Price       float64 `json:"price" firestore:"price"`
	ImageURL    string  `json:"imageUrl" firestore:"imageUrl"`

	OS        string `json:"os,omitempty" firestore:"os,omitempty"`
	Processor string `json:"processor,omitempty" firestore:"processor,omitempty"`
	Memory    string `json:"memory,omitempty" firestore:"memory,omitempty"`
	Graphics  string `json:"graphics,omitempty" firestore:"graphics,omitempty"`
	Storage   string `json:"storage,omitempty" firestore:"storage,omitempty"`

	// Weight is the download size in GB, the lookup key for price suggestion.
	Weight float64 `json:"weight,omitempty" firestore:"weight,omitempty"`
	// Gotty holds the "game of the year" award annotation.
	Gotty int `json:"gotty,omitempty" firestore:"gotty,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

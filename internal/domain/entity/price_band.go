package entity

// PriceBand is one row of the admin-editable price rule table: listings whose
// weight falls inside [Min, Max] get Price suggested. Bands are intended to
// partition the weight domain but nothing validates that; lookup is
// first-match-wins in fetch order.
type PriceBand struct {
	ID    string  `json:"id" firestore:"id"`
	Min   float64 `json:"min" firestore:"min"`
	Max   float64 `json:"max" firestore:"max"`
	Price float64 `json:"price" firestore:"price"`
}

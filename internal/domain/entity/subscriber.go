package entity

import (
	"time"
)

// Subscriber is a contact-capture record keyed by email; re-subscribing with the
// same email refreshes the row instead of duplicating it.
type Subscriber struct {
	Name             string    `json:"name,omitempty" firestore:"name,omitempty"`
	Email            string    `json:"email" firestore:"email"`
	Whatsapp         string    `json:"whatsapp" firestore:"whatsapp"`
	WantsNewsletter  bool      `json:"wants_newsletter" firestore:"wantsNewsletter"`
	SubscriptionDate time.Time `json:"subscription_date" firestore:"subscriptionDate"`
}

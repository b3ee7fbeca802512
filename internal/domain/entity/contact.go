package entity

// Contact is the storefront's singleton contact record, read by the public
// contact page and edited only from the admin console.
type Contact struct {
	Name      string `json:"name" firestore:"name"`
	Phone     string `json:"phone" firestore:"phone"`
	Whatsapp  string `json:"whatsapp" firestore:"whatsapp"`
	Email     string `json:"email" firestore:"email"`
	Facebook  string `json:"facebook" firestore:"facebook"`
	Instagram string `json:"instagram" firestore:"instagram"`
}

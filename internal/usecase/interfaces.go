package usecase

import "context"

// FirebaseAuthClient is the slice of the external identity provider the use
// cases need. Token verification for request auth lives in middleware, not here.
type FirebaseAuthClient interface {
	SignInWithEmailPassword(email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUserEmail(ctx context.Context, uid string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

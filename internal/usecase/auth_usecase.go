package usecase

import (
	"context"

	"charlygames/pkg/errors"
	"charlygames/pkg/logger"
)

// AuthUseCase fronts the external identity provider. Admins are provisioned out
// of band; there is no self-registration and no local credential storage.
type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
	}
}

type AuthResult struct {
	UID   string
	Email string
	Token string
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	return &AuthResult{
		UID:   uid,
		Email: email,
		Token: token,
	}, nil
}

// UpdatePassword verifies the current password by re-signing-in before asking
// the provider to change it.
func (uc *AuthUseCase) UpdatePassword(ctx context.Context, uid, currentPassword, newPassword string) error {
	email, err := uc.firebaseAuth.GetUserEmail(ctx, uid)
	if err != nil {
		return errors.NotFound("User", err)
	}

	if _, err := uc.firebaseAuth.SignInWithEmailPassword(email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

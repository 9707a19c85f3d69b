// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DeleteUserInput identifies the user to remove.
type DeleteUserInput struct {
	UserID int64 `json:"userId" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's identity.
// The password hash never appears here.
type RegisterOutput struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
}

// DeleteUserOutput reports how many rows the delete removed. Zero is a valid
// outcome: deleting a non-existent id is a no-op, not an error.
type DeleteUserOutput struct {
	Deleted int64 `json:"deleted"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	DeleteUser(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error)
}

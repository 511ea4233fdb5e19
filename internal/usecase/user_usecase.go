// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kaelo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterCreatorInput defines the data required to register a route creator.
type RegisterCreatorInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
}

// RegisterBusinessOwnerInput defines the data required to register a business owner.
type RegisterBusinessOwnerInput struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
	TaxID       string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	RegisterCreator(ctx context.Context, input *RegisterCreatorInput) (*RegisterOutput, error)
	RegisterBusinessOwner(ctx context.Context, input *RegisterBusinessOwnerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

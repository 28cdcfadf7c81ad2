package usecase

import (
	"context"

	"placeswipe/internal/domain/entity"
)

// CompleteOnboardingInput represents the input for finishing onboarding
type CompleteOnboardingInput struct {
	FullName string      `json:"full_name" validate:"required,min=1,max=120"`
	Role     entity.Role `json:"role" validate:"required,oneof=explorer business"`
}

// UserUsecase defines the interface for user-related use cases
type UserUsecase interface {
	// CompleteOnboarding creates the internal user for an authenticated session.
	// Calling it again returns the existing user unchanged.
	CompleteOnboarding(ctx context.Context, session *entity.AuthSession, input *CompleteOnboardingInput) (*entity.User, error)
	Me(ctx context.Context, session *entity.AuthSession) (*entity.User, error)
}

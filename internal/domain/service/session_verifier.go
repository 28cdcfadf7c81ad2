package service

import (
	"github.com/golang-jwt/jwt/v5"

	"placeswipe/internal/domain/entity"
)

// SessionMetadata is the provider-managed public metadata carried in session tokens.
type SessionMetadata struct {
	Role               string `json:"role,omitempty"`
	OnboardingComplete bool   `json:"onboardingComplete,omitempty"`
}

// SessionClaims are the claims of a session token issued by the auth provider.
type SessionClaims struct {
	Email    string          `json:"email,omitempty"`
	Metadata SessionMetadata `json:"metadata"`
	jwt.RegisteredClaims
}

// SessionVerifier turns a bearer token into an AuthSession.
// The service never issues tokens itself.
type SessionVerifier interface {
	Verify(token string) (*entity.AuthSession, error)
}

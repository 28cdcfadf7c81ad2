package entity

// AuthSession is the caller identity handed over by the session provider.
// A nil *AuthSession means the request carried no usable session.
type AuthSession struct {
	IsAuthenticated    bool   // Provider confirmed the token.
	UserID             string // External identity (provider subject), not the internal user id.
	Email              string // Email claim, used when creating the internal user.
	OnboardingComplete bool   // Provider-side flag set once onboarding finished.
	Role               Role   // Empty until the provider has a role claim.
}

// HasRole reports whether the session is authenticated and carries role.
func (s *AuthSession) HasRole(role Role) bool {
	return s != nil && s.IsAuthenticated && s.Role == role
}

// Authenticated reports whether the session belongs to a signed-in caller.
func (s *AuthSession) Authenticated() bool {
	return s != nil && s.IsAuthenticated && s.UserID != ""
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"placeswipe/config"
	"placeswipe/internal/domain/entity"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionKeyMissing is returned when neither an HMAC secret nor an RSA key is configured.
var ErrSessionKeyMissing = errors.New("session: hmacSecret or rsaPublicKeyPem must be configured")

// jwtSessionVerifier validates session tokens issued by the external auth provider.
type jwtSessionVerifier struct {
	parser  *jwt.Parser
	keyFunc jwt.Keyfunc
}

// NewSessionVerifier builds a verifier from the session config. An RSA public
// key takes precedence over an HMAC secret.
func NewSessionVerifier(cfg *config.Config) (service.SessionVerifier, error) {
	sc := cfg.Session
	if sc == nil {
		return nil, ErrSessionKeyMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithLeeway(sc.Leeway),
		jwt.WithExpirationRequired(),
	}
	if sc.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(sc.Issuer))
	}

	var key any
	switch {
	case sc.RSAPublicKeyPEM != "":
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(sc.RSAPublicKeyPEM))
		if err != nil {
			return nil, errors.Wrap(err, "parse session public key")
		}
		key = publicKey
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	case sc.HMACSecret != "":
		key = []byte(sc.HMACSecret)
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	default:
		return nil, ErrSessionKeyMissing
	}

	return &jwtSessionVerifier{
		parser:  jwt.NewParser(opts...),
		keyFunc: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// Verify parses token and maps its claims to an AuthSession. Unknown roles
// are dropped rather than rejected.
func (v *jwtSessionVerifier) Verify(token string) (*entity.AuthSession, error) {
	claims := &service.SessionClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, v.keyFunc); err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	if claims.Subject == "" {
		return nil, errors.New("session token has no subject")
	}

	role := entity.Role(claims.Metadata.Role)
	if !role.IsValid() {
		role = ""
	}

	return &entity.AuthSession{
		IsAuthenticated:    true,
		UserID:             claims.Subject,
		Email:              claims.Email,
		OnboardingComplete: claims.Metadata.OnboardingComplete,
		Role:               role,
	}, nil
}

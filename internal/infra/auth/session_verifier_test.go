package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"placeswipe/config"
	"placeswipe/internal/domain/entity"
	"placeswipe/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_long_enough_for_hs256"

func newHMACConfig(issuer string) *config.Config {
	return &config.Config{Session: &config.SessionConfig{
		Issuer:     issuer,
		HMACSecret: testSecret,
		Leeway:     time.Second,
	}}
}

func signHS256(t *testing.T, claims *service.SessionClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func validClaims(role string) *service.SessionClaims {
	now := time.Now()

	return &service.SessionClaims{
		Email:    "ana@example.com",
		Metadata: service.SessionMetadata{Role: role, OnboardingComplete: true},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			Issuer:    "https://auth.example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestSessionVerifier_HS256(t *testing.T) {
	verifier, err := NewSessionVerifier(newHMACConfig("https://auth.example.com"))
	require.NoError(t, err)

	session, err := verifier.Verify(signHS256(t, validClaims("explorer")))
	require.NoError(t, err)

	assert.Equal(t, &entity.AuthSession{
		IsAuthenticated:    true,
		UserID:             "user_2abc",
		Email:              "ana@example.com",
		OnboardingComplete: true,
		Role:               entity.RoleExplorer,
	}, session)
}

func TestSessionVerifier_DropsUnknownRole(t *testing.T) {
	verifier, err := NewSessionVerifier(newHMACConfig(""))
	require.NoError(t, err)

	session, err := verifier.Verify(signHS256(t, validClaims("admin")))
	require.NoError(t, err)
	assert.Empty(t, session.Role)
	assert.True(t, session.Authenticated())
}

func TestSessionVerifier_Rejects(t *testing.T) {
	verifier, err := NewSessionVerifier(newHMACConfig("https://auth.example.com"))
	require.NoError(t, err)

	expired := validClaims("explorer")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	wrongIssuer := validClaims("explorer")
	wrongIssuer.Issuer = "https://evil.example.com"

	noExpiry := validClaims("explorer")
	noExpiry.ExpiresAt = nil

	noSubject := validClaims("explorer")
	noSubject.Subject = ""

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("explorer")).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: signHS256(t, expired)},
		{name: "wrong issuer", token: signHS256(t, wrongIssuer)},
		{name: "missing expiry", token: signHS256(t, noExpiry)},
		{name: "missing subject", token: signHS256(t, noSubject)},
		{name: "wrong key", token: otherKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := verifier.Verify(tt.token)
			require.Error(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestSessionVerifier_RS256(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	verifier, err := NewSessionVerifier(&config.Config{Session: &config.SessionConfig{
		RSAPublicKeyPEM: string(publicPEM),
		HMACSecret:      testSecret,
	}})
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims("business")).SignedString(privateKey)
	require.NoError(t, err)

	session, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBusiness, session.Role)

	// HS256 tokens are refused once an RSA key is configured.
	_, err = verifier.Verify(signHS256(t, validClaims("business")))
	require.Error(t, err)
}

func TestNewSessionVerifier_RequiresKey(t *testing.T) {
	_, err := NewSessionVerifier(&config.Config{Session: &config.SessionConfig{}})
	require.ErrorIs(t, err, ErrSessionKeyMissing)

	_, err = NewSessionVerifier(&config.Config{})
	require.ErrorIs(t, err, ErrSessionKeyMissing)
}

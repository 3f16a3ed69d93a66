package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestAuthenticate_EmptyTokenIsAnonymous(t *testing.T) {
	gw, err := NewJWTGateway("secret", "")
	require.NoError(t, err)

	id, err := gw.Authenticate("")
	require.NoError(t, err)
	assert.False(t, id.Authenticated())
}

func TestAuthenticate_ReadsSubjectPlansAndFeatures(t *testing.T) {
	gw, err := NewJWTGateway("secret", "")
	require.NoError(t, err)

	tok := signHS256(t, "secret", jwt.MapClaims{
		"sub": "user_2abc",
		"pla": "u:pro",
		"fea": "u:3_companion_limit, o:voice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	id, err := gw.Authenticate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", id.UserId)
	assert.True(t, id.Has(Plan("pro")))
	assert.True(t, id.Has(Feature("3_companion_limit")))
	assert.True(t, id.Has(Feature("voice")))
	assert.False(t, id.Has(Feature("10_companion_limit")))
}

func TestAuthenticate_FallsBackToUserIdClaim(t *testing.T) {
	gw, err := NewJWTGateway("secret", "")
	require.NoError(t, err)

	tok := signHS256(t, "secret", jwt.MapClaims{
		"user_id": "u-42",
		"fea":     []interface{}{"10_companion_limit"},
	})

	id, err := gw.Authenticate(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-42", id.UserId)
	assert.True(t, id.Has(Feature("10_companion_limit")))
}

func TestAuthenticate_Rejections(t *testing.T) {
	gw, err := NewJWTGateway("secret", "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signHS256(t, "other", jwt.MapClaims{"sub": "u1"})},
		{"expired", signHS256(t, "secret", jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()})},
		{"no subject", signHS256(t, "secret", jwt.MapClaims{"pla": "u:pro"})},
		{"malformed", "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := gw.Authenticate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.False(t, id.Authenticated())
		})
	}
}

func TestAuthenticate_RSAPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	gw, err := NewJWTGateway("", string(pemKey))
	require.NoError(t, err)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "user_rsa"}).SignedString(key)
	require.NoError(t, err)

	id, err := gw.Authenticate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user_rsa", id.UserId)

	// an HMAC token must not be accepted by an RSA gateway
	_, err = gw.Authenticate(signHS256(t, "secret", jwt.MapClaims{"sub": "user_rsa"}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTGateway_RequiresKey(t *testing.T) {
	_, err := NewJWTGateway("", "")
	assert.ErrorIs(t, err, ErrNoVerifierKey)
}

func TestIdentityHas(t *testing.T) {
	id := Identity{UserId: "u1", Plans: []string{"pro"}, Features: []string{"3_companion_limit"}}

	assert.True(t, id.Has(Plan("pro")))
	assert.False(t, id.Has(Plan("3_companion_limit")))
	assert.True(t, id.Has(Feature("3_companion_limit")))
	assert.False(t, id.Has(EntitlementQuery{}))
	assert.False(t, Anonymous().Has(Plan("pro")))
}

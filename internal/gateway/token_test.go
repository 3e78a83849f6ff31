package gateway

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyID    = "gateway-test-key"
	testIssuer   = "https://auth.example.com"
	testAudience = "patient-platform"
)

// newJWKSServer serves the public half of key as a JWKS document, the way
// the auth service publishes its signing keys.
func newJWKSServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	jwks := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"use": "sig",
			"alg": "RS256",
			"kid": testKeyID,
			"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			"e":   "AQAB",
		}},
	}
	body, err := json.Marshal(jwks)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = testKeyID
	signed, err := tok.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(sub string) Claims {
	return Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newTestValidator(t *testing.T, key *rsa.PrivateKey) *TokenValidator {
	t.Helper()
	srv := newJWKSServer(t, key)
	v, err := NewTokenValidator(context.Background(), srv.URL, testIssuer, testAudience)
	require.NoError(t, err)
	return v
}

func TestValidate_ValidToken(t *testing.T) {
	key := newTestKey(t)
	v := newTestValidator(t, key)

	claims, err := v.Validate(signToken(t, key, validClaims("user-42")))
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidate_ExpiredToken(t *testing.T) {
	key := newTestKey(t)
	v := newTestValidator(t, key)

	c := validClaims("user-42")
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	_, err := v.Validate(signToken(t, key, c))
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_WrongKey(t *testing.T) {
	key := newTestKey(t)
	v := newTestValidator(t, key)

	// Signed with a key the JWKS does not publish.
	other := newTestKey(t)
	_, err := v.Validate(signToken(t, other, validClaims("user-42")))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidate_Malformed(t *testing.T) {
	v := newTestValidator(t, newTestKey(t))

	_, err := v.Validate("not.a.token")
	require.ErrorIs(t, err, ErrMalformedToken)
}

func TestValidate_WrongAudience(t *testing.T) {
	key := newTestKey(t)
	v := newTestValidator(t, key)

	c := validClaims("user-42")
	c.Audience = jwt.ClaimStrings{"some-other-service"}
	_, err := v.Validate(signToken(t, key, c))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongIssuer(t *testing.T) {
	key := newTestKey(t)
	v := newTestValidator(t, key)

	c := validClaims("user-42")
	c.Issuer = "https://evil.example.com"
	_, err := v.Validate(signToken(t, key, c))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MissingExpiry(t *testing.T) {
	key := newTestKey(t)
	v := newTestValidator(t, key)

	c := validClaims("user-42")
	c.ExpiresAt = nil
	_, err := v.Validate(signToken(t, key, c))
	require.ErrorIs(t, err, ErrInvalidToken)
}

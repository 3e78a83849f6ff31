package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken     = errors.New("authorization header missing")
	ErrMalformedToken   = errors.New("malformed token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token")
)

// Claims are the verified attributes extracted from a bearer token.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator verifies bearer tokens against the identity provider's
// published key set. Keys are cached and refreshed in the background by
// keyfunc, so a rotated key is picked up within one refresh interval.
type TokenValidator struct {
	kf       jwt.Keyfunc
	issuer   string
	audience string
}

func NewTokenValidator(ctx context.Context, jwksURL, issuer, audience string) (*TokenValidator, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, err
	}
	return newTokenValidator(k.Keyfunc, issuer, audience), nil
}

func newTokenValidator(kf jwt.Keyfunc, issuer, audience string) *TokenValidator {
	return &TokenValidator{kf: kf, issuer: issuer, audience: audience}
}

// Validate checks signature, expiry, issuer and audience and returns the
// verified claims. It has no side effects.
func (v *TokenValidator) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.kf,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrInvalidSignature
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

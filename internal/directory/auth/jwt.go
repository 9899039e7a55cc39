// Package auth verifies session tokens issued by the user directory.
// The directory signs sessions with RS256 and publishes its keys via JWKS;
// a shared-secret HS256 path exists for local development and tests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Algorithm constants for accepted JWT signing methods
const (
	AlgorithmHS256 = "HS256"
	AlgorithmRS256 = "RS256"
)

// Claims represents the session token claims we care about
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier validates directory-issued session tokens and resolves
// the current user from them.
type Verifier struct {
	secret []byte       // HS256 shared secret; empty disables the HS256 path
	keys   *JWKSFetcher // RS256 keys published by the directory; nil disables RS256
}

// NewVerifier creates a session token verifier.
// At least one of secret and keys must be configured.
func NewVerifier(secret []byte, keys *JWKSFetcher) *Verifier {
	return &Verifier{
		secret: secret,
		keys:   keys,
	}
}

// stripBearerPrefix removes the "Bearer " prefix from a token string
func stripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return strings.TrimSpace(tokenString)
}

// VerifyToken checks the token signature and registered claims (exp, nbf)
// and returns the parsed claims.
func (v *Verifier) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	tokenString = stripBearerPrefix(tokenString)

	keyfunc := func(t *jwt.Token) (interface{}, error) {
		switch t.Method.Alg() {
		case AlgorithmHS256:
			// Shared-secret tokens must never carry a kid; a kid means the
			// token was meant for asymmetric verification. This guards
			// against algorithm confusion attacks.
			if _, hasKid := t.Header["kid"]; hasKid {
				return nil, errors.New("HS256 token must not carry a key ID")
			}
			if len(v.secret) == 0 {
				return nil, errors.New("HS256 tokens are not accepted")
			}
			return v.secret, nil

		case AlgorithmRS256:
			if v.keys == nil {
				return nil, errors.New("RS256 tokens are not accepted")
			}
			kid, _ := t.Header["kid"].(string)
			if kid == "" {
				return nil, errors.New("missing key ID in token header")
			}
			return v.keys.PublicKey(ctx, kid)

		default:
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyfunc,
		jwt.WithValidMethods([]string{AlgorithmHS256, AlgorithmRS256}))
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// ResolveUserID verifies the token and returns the authenticated user's
// directory ID from the subject claim.
func (v *Verifier) ResolveUserID(ctx context.Context, tokenString string) (string, error) {
	claims, err := v.VerifyToken(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("missing user ID in session token")
	}
	return claims.Subject, nil
}

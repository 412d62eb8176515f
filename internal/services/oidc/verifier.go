// Package oidc verifies Auth0 access tokens and exposes the login
// configuration frontends need to start the flow.
package oidc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ClaimNamespace is the Auth0 Action namespace custom claims live under.
const ClaimNamespace = "https://fightpulse-api.com"

// Verifier verifies JWT access tokens against the tenant's JWKS
type Verifier struct {
	jwksManager *JWKSManager
	issuer      string
	audience    string
}

// NewVerifier creates a new token verifier. issuer should carry its trailing
// slash exactly as Auth0 reports it.
func NewVerifier(jwksManager *JWKSManager, issuer, audience string) *Verifier {
	return &Verifier{
		jwksManager: jwksManager,
		issuer:      issuer,
		audience:    audience,
	}
}

// JWKSURL returns the tenant's JWKS document URL
func (v *Verifier) JWKSURL() string {
	return strings.TrimSuffix(v.issuer, "/") + "/.well-known/jwks.json"
}

// Verify validates the token signature, expiry, issuer and audience, then
// maps the namespaced custom claims onto an identity claim. LoginTime comes
// from iat: the moment the token was minted is the moment the user logged in.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*models.IdentityClaim, error) {
	keys, err := v.jwksManager.GetJWKS(ctx, v.JWKSURL())
	if err != nil {
		return nil, fmt.Errorf("failed to get JWKS: %w", err)
	}

	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKeySet(keys),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse/verify token: %w", err)
	}

	return claimFromToken(token), nil
}

func claimFromToken(token jwt.Token) *models.IdentityClaim {
	claim := &models.IdentityClaim{
		Sub:           token.Subject(),
		Email:         stringClaim(token, ClaimNamespace+"/email"),
		Name:          stringClaim(token, ClaimNamespace+"/name"),
		Picture:       stringClaim(token, ClaimNamespace+"/picture"),
		EmailVerified: boolClaim(token, ClaimNamespace+"/email_verified"),
	}

	if iat := token.IssuedAt(); !iat.IsZero() {
		loginTime := iat.UTC()
		claim.LoginTime = &loginTime
	} else {
		now := time.Now().UTC()
		claim.LoginTime = &now
	}

	return claim
}

func stringClaim(token jwt.Token, name string) string {
	if v, ok := token.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func boolClaim(token jwt.Token, name string) bool {
	if v, ok := token.Get(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

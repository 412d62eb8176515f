package models

import "time"

// IdentityClaim is the verified set of attributes the identity provider
// asserts about the caller. Custom claims (email, picture, name,
// email_verified) arrive under the Auth0 action namespace; LoginTime is
// derived from the token's iat.
type IdentityClaim struct {
	Sub           string     `json:"sub"`
	Email         string     `json:"email"`
	Name          string     `json:"name,omitempty"`
	Picture       string     `json:"picture,omitempty"`
	EmailVerified bool       `json:"email_verified,omitempty"`
	LoginTime     *time.Time `json:"login_time,omitempty"`
}

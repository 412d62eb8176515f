package oidc

import (
	"strings"

	"golang.org/x/oauth2"
)

// LoginConfig is what the frontend needs to start the authorization flow.
type LoginConfig struct {
	Issuer       string `json:"issuer"`
	ClientID     string `json:"client_id"`
	Audience     string `json:"audience"`
	AuthorizeURL string `json:"authorize_url"`
}

// Client wraps the tenant's OAuth2 endpoints for frontend login config.
type Client struct {
	config   *oauth2.Config
	issuer   string
	audience string
}

// NewClient creates a new OAuth2 client for the Auth0 tenant
func NewClient(issuer, clientID, audience, redirectURL string) *Client {
	base := strings.TrimSuffix(issuer, "/")
	config := &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURL,
		Scopes:      []string{"openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  base + "/authorize",
			TokenURL: base + "/oauth/token",
		},
	}
	return &Client{config: config, issuer: issuer, audience: audience}
}

// LoginConfig returns the login configuration for the frontend. The audience
// rides along as an extra authorize parameter, as Auth0 expects.
func (c *Client) LoginConfig(state string) *LoginConfig {
	return &LoginConfig{
		Issuer:       c.issuer,
		ClientID:     c.config.ClientID,
		Audience:     c.audience,
		AuthorizeURL: c.config.AuthCodeURL(state, oauth2.SetAuthURLParam("audience", c.audience)),
	}
}

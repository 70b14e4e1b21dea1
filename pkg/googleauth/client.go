package googleauth

import (
	"context"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/hashimadil/storefront-backend/pkg/config"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
)

// Profile is the subset of the Google userinfo payload the storefront needs.
type Profile struct {
	Email string
	Name  string
}

// Client drives the Google OAuth authorization-code flow and resolves
// the signed-in user's profile.
type Client struct {
	oauth *oauth2.Config
}

// Exchanger exposes the surface consumed by the auth service.
type Exchanger interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

// NewClient builds the OAuth client from the configured credentials.
func NewClient(cfg config.GoogleConfig) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "google client id and secret are required")
	}
	if strings.TrimSpace(cfg.CallbackURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "google callback url is required")
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
	}, nil
}

// AuthCodeURL returns the Google consent page URL carrying the CSRF state.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the user's
// email and display name from the userinfo endpoint.
func (c *Client) Exchange(ctx context.Context, code string) (*Profile, error) {
	if strings.TrimSpace(code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "authorization code is required")
	}

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "exchange authorization code")
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(c.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build userinfo service")
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch userinfo")
	}
	if strings.TrimSpace(info.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "google profile has no email")
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = strings.Split(info.Email, "@")[0]
	}

	return &Profile{Email: info.Email, Name: name}, nil
}

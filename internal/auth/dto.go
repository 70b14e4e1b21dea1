package auth

import (
	"github.com/hashimadil/storefront-backend/internal/users"
)

// SignInResult carries the minted credentials after a completed Google
// callback.
type SignInResult struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}

// MeResponse is the payload returned by the current-user endpoint.
type MeResponse struct {
	User *users.UserDTO `json:"user"`
}

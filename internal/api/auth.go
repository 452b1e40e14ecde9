package api

import (
	"context"
	"net/http"

	"github.com/Hosannah10/julidsfashion-admin/internal/session"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the backend's response to a successful credential check.
// Whether the user may enter the admin client is the session store's call.
type LoginResult struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := jsonBody(loginBody{Email: email, Password: password})
	if err != nil {
		return LoginResult{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login/", body, "application/json", false)
	if err != nil {
		return LoginResult{}, err
	}
	var out LoginResult
	if err := c.doJSON(req, &out, "Invalid email or password."); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// loginRequest is the credential payload for the token endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResult is the token endpoint's data payload.
type loginResult struct {
	Token string       `json:"token"`
	User  records.User `json:"user"`
}

// Login exchanges operator credentials for an access token. The token is
// sent as x-access-token on every subsequent call.
func (c *Client) Login(ctx context.Context, username, password string) (string, *records.User, error) {
	data, err := c.do(ctx, http.MethodPost, epLogin, loginRequest{Username: username, Password: password})
	if err != nil {
		return "", nil, err
	}

	var result loginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return "", nil, fmt.Errorf("decoding login response: %w", err)
	}
	if result.Token == "" {
		return "", nil, fmt.Errorf("backend returned no token")
	}
	if result.User.Username == "" {
		result.User.Username = username
	}
	return result.Token, &result.User, nil
}

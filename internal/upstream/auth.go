package upstream

import (
	"context"
	"errors"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token, the identity and the
// role-specific navigation menu. A 401 or 403 maps to
// ErrInvalidCredentials; anything else stays an *APIError.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	status, err := c.doJSON(ctx, "login", http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &res, nil
}

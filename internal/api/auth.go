package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, email, password string) (models.Identity, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return models.Identity{}, err
	}

	var resp struct {
		Token    string `json:"token"`
		Role     string `json:"role"`
		UserID   string `json:"user_id"`
		FullName string `json:"full_name"`
	}
	if err := decodeInto(env, &resp); err != nil {
		return models.Identity{}, err
	}
	if resp.Token == "" {
		return models.Identity{}, &Error{Kind: KindInternal, Message: "Login response did not include a token", RequestID: env.RequestID}
	}

	return models.Identity{
		Token:    resp.Token,
		UserID:   resp.UserID,
		FullName: resp.FullName,
		Email:    email,
		Role:     resp.Role,
	}, nil
}

// Me returns the profile behind the current token. The token itself is
// not part of the result.
func (c *Client) Me(ctx context.Context) (models.Identity, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return models.Identity{}, err
	}

	payload := env.Data
	var wrapper struct {
		User json.RawMessage `json:"user"`
	}
	if json.Unmarshal(env.Data, &wrapper) == nil && !isNull(wrapper.User) {
		payload = wrapper.User
	}

	var me struct {
		UserID   string `json:"user_id"`
		Sub      string `json:"sub"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(payload, &me); err != nil || (me.UserID == "" && me.Sub == "" && me.Role == "") {
		return models.Identity{}, &Error{Kind: KindUnauthorized, Status: http.StatusOK, Message: "Session is no longer valid", RequestID: env.RequestID, Err: err}
	}

	email := me.Email
	if email == "" {
		email = me.Sub
	}
	return models.Identity{
		UserID:   me.UserID,
		FullName: me.FullName,
		Email:    email,
		Role:     me.Role,
	}, nil
}

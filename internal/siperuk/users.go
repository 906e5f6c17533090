package siperuk

import (
	"context"
	"net/http"
)

type CreateUserPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserPayload omits the password entirely when it is empty so the
// upstream keeps the current one.
type UpdateUserPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var out []User
	if err := c.doJSON(ctx, http.MethodGet, "/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, payload CreateUserPayload) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodPost, "/user", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, payload UpdateUserPayload) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodPut, "/user/"+id, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/"+id, token, nil, nil)
}

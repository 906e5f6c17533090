package siperuk

import (
	"context"
	"net/http"
)

type RoomPayload struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
}

func (c *Client) ListRooms(ctx context.Context, token string) ([]Room, error) {
	var out []Room
	if err := c.doJSON(ctx, http.MethodGet, "/room", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRoom(ctx context.Context, token string, payload RoomPayload) (*Room, error) {
	var out Room
	if err := c.doJSON(ctx, http.MethodPost, "/room", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoom(ctx context.Context, token, id string, payload RoomPayload) (*Room, error) {
	var out Room
	if err := c.doJSON(ctx, http.MethodPut, "/room/"+id, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRoom(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/room/"+id, token, nil, nil)
}

package siperuk

import (
	"context"
	"net/http"
)

type CreateBookingPayload struct {
	RoomID          string `json:"roomId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Purpose         string `json:"purpose"`
	Requester       string `json:"requester"`
	UserName        string `json:"userName"`
	UserID          string `json:"userId,omitempty"`
	Status          string `json:"status"`
	BookingStatusID int    `json:"bookingStatusId"`
}

// UpdateBookingPayload is a full-record replace: the API's PUT clears any
// field that is not resent, so status-only changes must carry the original
// room, time range and purpose too.
type UpdateBookingPayload struct {
	RoomID          string `json:"roomId"`
	UserID          string `json:"userId,omitempty"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Purpose         string `json:"purpose"`
	BookingStatusID int    `json:"bookingStatusId"`
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]Booking, error) {
	var out []Booking
	if err := c.doJSON(ctx, http.MethodGet, "/booking", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, token, id string) (*Booking, error) {
	var out Booking
	if err := c.doJSON(ctx, http.MethodGet, "/booking/"+id, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, payload CreateBookingPayload) (*Booking, error) {
	var out Booking
	if err := c.doJSON(ctx, http.MethodPost, "/booking", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBooking(ctx context.Context, token, id string, payload UpdateBookingPayload) (*Booking, error) {
	var out Booking
	if err := c.doJSON(ctx, http.MethodPut, "/booking/"+id, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/booking/"+id, token, nil, nil)
}

func (c *Client) ListBookingStatuses(ctx context.Context, token string) ([]BookingStatus, error) {
	var out []BookingStatus
	if err := c.doJSON(ctx, http.MethodGet, "/bookingstatus", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListHistory(ctx context.Context, token string) ([]HistoryEntry, error) {
	var out []HistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/bookingstatushistory", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListHistoryForBooking(ctx context.Context, token, bookingID string) ([]HistoryEntry, error) {
	var out []HistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/bookingstatushistory/booking/"+bookingID, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

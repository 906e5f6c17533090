package siperuk

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID is an identifier the API serializes sometimes as a JSON string and
// sometimes as a number.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// StatusID is a booking-status id that may arrive as a number, a numeric
// string, or not at all. Zero means absent; valid ids are 1-4.
type StatusID int

func (s *StatusID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
		if raw == "" {
			*s = 0
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// A non-numeric status id carries no signal; the string status
		// field is the fallback.
		*s = 0
		return nil
	}
	*s = StatusID(n)
	return nil
}

func (s StatusID) Int() int { return int(s) }

type User struct {
	ID       FlexID `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Room struct {
	ID          FlexID   `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Location    string   `json:"location"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
	NextBooking string   `json:"nextBooking,omitempty"`
}

type Booking struct {
	ID              FlexID   `json:"id"`
	RoomID          FlexID   `json:"roomId"`
	RoomName        string   `json:"roomName,omitempty"`
	Requester       string   `json:"requester,omitempty"`
	UserName        string   `json:"userName,omitempty"`
	UserID          FlexID   `json:"userId,omitempty"`
	Date            string   `json:"date,omitempty"`
	TimeRange       string   `json:"timeRange,omitempty"`
	StartTime       string   `json:"startTime,omitempty"`
	EndTime         string   `json:"endTime,omitempty"`
	Status          string   `json:"status,omitempty"`
	BookingStatusID StatusID `json:"bookingStatusId,omitempty"`
	Purpose         string   `json:"purpose"`
}

type BookingStatus struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// HistoryBooking is the booking snapshot embedded in a history entry.
type HistoryBooking struct {
	ID        FlexID `json:"id"`
	RoomID    FlexID `json:"roomId"`
	RoomName  string `json:"roomName,omitempty"`
	UserID    FlexID `json:"userId,omitempty"`
	UserName  string `json:"userName,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
}

type HistoryEntry struct {
	ID              FlexID          `json:"id"`
	BookingID       FlexID          `json:"bookingId"`
	StatusID        StatusID        `json:"statusId,omitempty"`
	BookingStatusID StatusID        `json:"bookingStatusId,omitempty"`
	Note            string          `json:"note,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	ChangedAt       string          `json:"changedAt,omitempty"`
	BookingStatus   *BookingStatus  `json:"bookingStatus,omitempty"`
	Booking         *HistoryBooking `json:"booking,omitempty"`
}

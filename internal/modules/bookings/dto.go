package bookings

import (
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

type BookingForm struct {
	RoomID          string `form:"room_id"`
	Date            string `form:"date"`
	StartTime       string `form:"start_time"`
	EndTime         string `form:"end_time"`
	Purpose         string `form:"purpose"`
	BookingStatusID int    `form:"booking_status_id"`
}

type StatusForm struct {
	BookingStatusID int `form:"booking_status_id"`
}

// Row is one booking prepared for the table: raw record plus the derived
// canonical status and display strings.
type Row struct {
	Booking   siperuk.Booking
	Key       status.Key
	Label     string
	RoomName  string
	Requester string
	DateLabel string
	TimeLabel string
}

// StatusOption feeds the status select in the manage column. The table is
// fixed upstream: 1=Waiting 2=Approved 3=Rejected 4=Finish.
type StatusOption struct {
	ID    int
	Label string
}

var StatusOptions = []StatusOption{
	{ID: 1, Label: "Waiting"},
	{ID: 2, Label: "Approved"},
	{ID: 3, Label: "Rejected"},
	{ID: 4, Label: "Finish"},
}

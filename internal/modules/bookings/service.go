package bookings

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

// APIClient is the slice of the upstream client the booking flows need.
type APIClient interface {
	ListBookings(ctx context.Context, token string) ([]siperuk.Booking, error)
	GetBooking(ctx context.Context, token, id string) (*siperuk.Booking, error)
	CreateBooking(ctx context.Context, token string, payload siperuk.CreateBookingPayload) (*siperuk.Booking, error)
	UpdateBooking(ctx context.Context, token, id string, payload siperuk.UpdateBookingPayload) (*siperuk.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

type Service struct {
	api APIClient
}

func NewService(api APIClient) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, sess *session.Session) ([]siperuk.Booking, error) {
	return s.api.ListBookings(ctx, sess.Token)
}

// Create books a room for the acting user. Only the user role creates
// bookings; admin and staff manage them. Validation failures never reach
// the network.
func (s *Service) Create(ctx context.Context, sess *session.Session, form BookingForm) error {
	if sess.User.Role != session.RoleUser {
		return ErrCreateForbidden
	}
	if err := validateTimes(form); err != nil {
		return err
	}

	startISO, err := combineISO(form.Date, form.StartTime)
	if err != nil {
		return ErrInvalidTime
	}
	endISO, err := combineISO(form.Date, form.EndTime)
	if err != nil {
		return ErrInvalidTime
	}

	statusID := form.BookingStatusID
	if statusID == 0 {
		statusID = 1
	}

	requester := sess.User.Name
	if requester == "" {
		requester = sess.User.Email
	}

	_, err = s.api.CreateBooking(ctx, sess.Token, siperuk.CreateBookingPayload{
		RoomID:          form.RoomID,
		StartTime:       startISO,
		EndTime:         endISO,
		Purpose:         form.Purpose,
		Requester:       requester,
		UserName:        requester,
		UserID:          sess.User.ID,
		Status:          "pending",
		BookingStatusID: statusID,
	})
	return err
}

// Update replaces a booking record wholesale.
func (s *Service) Update(ctx context.Context, sess *session.Session, id string, form BookingForm) error {
	if !canManage(sess) {
		return ErrManageForbidden
	}
	if err := validateTimes(form); err != nil {
		return err
	}

	startISO, err := combineISO(form.Date, form.StartTime)
	if err != nil {
		return ErrInvalidTime
	}
	endISO, err := combineISO(form.Date, form.EndTime)
	if err != nil {
		return ErrInvalidTime
	}

	_, err = s.api.UpdateBooking(ctx, sess.Token, id, siperuk.UpdateBookingPayload{
		RoomID:          form.RoomID,
		StartTime:       startISO,
		EndTime:         endISO,
		Purpose:         form.Purpose,
		BookingStatusID: form.BookingStatusID,
	})
	return err
}

// ChangeStatus moves a booking to a new status. The upstream PUT is a
// full-record replace, so the original room, requester and time range are
// fetched and resent next to the new status id; sending the status alone
// would silently blank those fields server-side.
func (s *Service) ChangeStatus(ctx context.Context, sess *session.Session, id string, statusID int) error {
	if !canManage(sess) {
		return ErrManageForbidden
	}
	if status.FromID(statusID) == status.Unknown {
		return ErrUnknownStatus
	}

	b, err := s.api.GetBooking(ctx, sess.Token, id)
	if err != nil {
		var apiErr *siperuk.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return ErrNotFound
		}
		return err
	}

	startISO, endISO, ok := timeRangeOf(*b)
	if !ok {
		return ErrIncompleteTime
	}

	_, err = s.api.UpdateBooking(ctx, sess.Token, id, siperuk.UpdateBookingPayload{
		RoomID:          b.RoomID.String(),
		UserID:          b.UserID.String(),
		StartTime:       startISO,
		EndTime:         endISO,
		Purpose:         b.Purpose,
		BookingStatusID: statusID,
	})
	return err
}

func (s *Service) Delete(ctx context.Context, sess *session.Session, id string) error {
	if !canManage(sess) {
		return ErrManageForbidden
	}
	return s.api.DeleteBooking(ctx, sess.Token, id)
}

// Active drops archived bookings (finish, rejected) from the list and
// applies the page filter on what remains. The archival counterparts live
// on the history page.
func Active(list []siperuk.Booking, filter status.Key) []siperuk.Booking {
	out := make([]siperuk.Booking, 0, len(list))
	for _, b := range list {
		key := status.FromBooking(b)
		if status.Archived(key) {
			continue
		}
		if filter != status.Unknown && key != filter {
			continue
		}
		out = append(out, b)
	}
	return out
}

func canManage(sess *session.Session) bool {
	return sess.User.Role == session.RoleAdmin || sess.User.Role == session.RoleStaff
}

func validateTimes(form BookingForm) error {
	if form.RoomID == "" || form.Date == "" || form.StartTime == "" || form.EndTime == "" || form.Purpose == "" {
		return ErrMissingFields
	}

	startMin, err := minutesOfDay(form.StartTime)
	if err != nil {
		return ErrInvalidTime
	}
	endMin, err := minutesOfDay(form.EndTime)
	if err != nil {
		return ErrInvalidTime
	}

	// Compared as minutes since midnight on the same date; equal is as
	// invalid as reversed.
	if endMin <= startMin {
		return ErrTimeOrder
	}
	return nil
}

func minutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func combineISO(date, clock string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(date)+" "+strings.TrimSpace(clock), time.Local)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// timeRangeOf recovers a booking's ISO start/end pair. Newer records carry
// it directly; legacy ones only have a date plus a "09:00 - 11:00" style
// free-text range.
func timeRangeOf(b siperuk.Booking) (startISO, endISO string, ok bool) {
	if b.StartTime != "" && b.EndTime != "" {
		return b.StartTime, b.EndTime, true
	}

	start, end := splitTimeRange(b.TimeRange)
	if b.Date == "" || start == "" || end == "" {
		return "", "", false
	}

	startISO, err := combineISO(b.Date, start)
	if err != nil {
		return "", "", false
	}
	endISO, err = combineISO(b.Date, end)
	if err != nil {
		return "", "", false
	}
	return startISO, endISO, true
}

func splitTimeRange(timeRange string) (start, end string) {
	parts := strings.SplitN(timeRange, "-", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

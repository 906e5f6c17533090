package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) ListBookings(ctx context.Context, token string) ([]siperuk.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]siperuk.Booking), args.Error(1)
}

func (m *MockAPIClient) GetBooking(ctx context.Context, token, id string) (*siperuk.Booking, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*siperuk.Booking), args.Error(1)
}

func (m *MockAPIClient) CreateBooking(ctx context.Context, token string, payload siperuk.CreateBookingPayload) (*siperuk.Booking, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*siperuk.Booking), args.Error(1)
}

func (m *MockAPIClient) UpdateBooking(ctx context.Context, token, id string, payload siperuk.UpdateBookingPayload) (*siperuk.Booking, error) {
	args := m.Called(ctx, token, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*siperuk.Booking), args.Error(1)
}

func (m *MockAPIClient) DeleteBooking(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func userSession() *session.Session {
	return &session.Session{
		User:  session.User{ID: "U1", Name: "Budi", Email: "budi@kampus.ac.id", Role: session.RoleUser},
		Token: "tok-user",
	}
}

func staffSession() *session.Session {
	return &session.Session{
		User:  session.User{ID: "S1", Name: "Sari", Email: "sari@kampus.ac.id", Role: session.RoleStaff},
		Token: "tok-staff",
	}
}

func validForm() BookingForm {
	return BookingForm{
		RoomID:    "R1",
		Date:      "2026-09-01",
		StartTime: "09:00",
		EndTime:   "11:00",
		Purpose:   "Rapat himpunan",
	}
}

func TestCreate_EndBeforeStartIsLocalError(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	form := validForm()
	form.StartTime = "09:00"
	form.EndTime = "08:00"

	err := svc.Create(context.Background(), userSession(), form)

	// Local validation failure: nothing may reach the network.
	assert.ErrorIs(t, err, ErrTimeOrder)
	api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_EqualTimesAreRejected(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	form := validForm()
	form.EndTime = form.StartTime

	assert.ErrorIs(t, svc.Create(context.Background(), userSession(), form), ErrTimeOrder)
}

func TestCreate_MissingFields(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	form := validForm()
	form.Purpose = ""

	assert.ErrorIs(t, svc.Create(context.Background(), userSession(), form), ErrMissingFields)
}

func TestCreate_OnlyUserRole(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	err := svc.Create(context.Background(), staffSession(), validForm())

	assert.ErrorIs(t, err, ErrCreateForbidden)
	api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_SendsPendingBookingForSessionUser(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	api.On("CreateBooking", mock.Anything, "tok-user", mock.MatchedBy(func(p siperuk.CreateBookingPayload) bool {
		start, errStart := time.Parse(time.RFC3339, p.StartTime)
		end, errEnd := time.Parse(time.RFC3339, p.EndTime)
		return p.RoomID == "R1" &&
			p.Purpose == "Rapat himpunan" &&
			p.Requester == "Budi" &&
			p.UserName == "Budi" &&
			p.UserID == "U1" &&
			p.Status == "pending" &&
			p.BookingStatusID == 1 &&
			errStart == nil && errEnd == nil && end.After(start)
	})).Return(&siperuk.Booking{ID: "B9"}, nil)

	err := svc.Create(context.Background(), userSession(), validForm())

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestChangeStatus_ResendsFullRecord(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	stored := &siperuk.Booking{
		ID:        "B1",
		RoomID:    "R1",
		UserID:    "U1",
		Purpose:   "Kuliah pengganti",
		StartTime: "2026-03-01T02:00:00Z",
		EndTime:   "2026-03-01T04:00:00Z",
	}
	api.On("GetBooking", mock.Anything, "tok-staff", "B1").Return(stored, nil)

	// The PUT is a full-record replace: the original room, requester and
	// time range ride along with the new status id.
	api.On("UpdateBooking", mock.Anything, "tok-staff", "B1", siperuk.UpdateBookingPayload{
		RoomID:          "R1",
		UserID:          "U1",
		StartTime:       "2026-03-01T02:00:00Z",
		EndTime:         "2026-03-01T04:00:00Z",
		Purpose:         "Kuliah pengganti",
		BookingStatusID: 2,
	}).Return(&siperuk.Booking{ID: "B1"}, nil)

	require.NoError(t, svc.ChangeStatus(context.Background(), staffSession(), "B1", 2))
	api.AssertExpectations(t)
}

func TestChangeStatus_RebuildsLegacyTimeRange(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	stored := &siperuk.Booking{
		ID:        "B2",
		RoomID:    "R2",
		Purpose:   "Seminar",
		Date:      "2026-03-01",
		TimeRange: "09:00 - 11:00",
	}
	api.On("GetBooking", mock.Anything, "tok-staff", "B2").Return(stored, nil)
	api.On("UpdateBooking", mock.Anything, "tok-staff", "B2", mock.MatchedBy(func(p siperuk.UpdateBookingPayload) bool {
		start, errStart := time.Parse(time.RFC3339, p.StartTime)
		end, errEnd := time.Parse(time.RFC3339, p.EndTime)
		return p.RoomID == "R2" &&
			p.Purpose == "Seminar" &&
			p.BookingStatusID == 4 &&
			errStart == nil && errEnd == nil &&
			end.Sub(start) == 2*time.Hour
	})).Return(&siperuk.Booking{ID: "B2"}, nil)

	require.NoError(t, svc.ChangeStatus(context.Background(), staffSession(), "B2", 4))
	api.AssertExpectations(t)
}

func TestChangeStatus_IncompleteTimeData(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	stored := &siperuk.Booking{ID: "B3", RoomID: "R1", TimeRange: "09:00"}
	api.On("GetBooking", mock.Anything, "tok-staff", "B3").Return(stored, nil)

	err := svc.ChangeStatus(context.Background(), staffSession(), "B3", 2)

	assert.ErrorIs(t, err, ErrIncompleteTime)
	api.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatus_RoleAndStatusGates(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	assert.ErrorIs(t, svc.ChangeStatus(context.Background(), userSession(), "B1", 2), ErrManageForbidden)
	assert.ErrorIs(t, svc.ChangeStatus(context.Background(), staffSession(), "B1", 9), ErrUnknownStatus)
}

func TestDelete_RequiresManager(t *testing.T) {
	api := new(MockAPIClient)
	svc := NewService(api)

	assert.ErrorIs(t, svc.Delete(context.Background(), userSession(), "B1"), ErrManageForbidden)

	api.On("DeleteBooking", mock.Anything, "tok-staff", "B1").Return(nil)
	require.NoError(t, svc.Delete(context.Background(), staffSession(), "B1"))
	api.AssertExpectations(t)
}

func TestActive_HidesArchivedAndApplFilter(t *testing.T) {
	list := []siperuk.Booking{
		{ID: "B1", BookingStatusID: 1},
		{ID: "B2", BookingStatusID: 2},
		{ID: "B3", BookingStatusID: 3},
		{ID: "B4", BookingStatusID: 4},
		{ID: "B5", Status: "completed"},
	}

	all := Active(list, status.Unknown)
	require.Len(t, all, 2)
	assert.Equal(t, siperuk.FlexID("B1"), all[0].ID)
	assert.Equal(t, siperuk.FlexID("B2"), all[1].ID)

	waiting := Active(list, status.Waiting)
	require.Len(t, waiting, 1)
	assert.Equal(t, siperuk.FlexID("B1"), waiting[0].ID)

	approved := Active(list, status.Approved)
	require.Len(t, approved, 1)
	assert.Equal(t, siperuk.FlexID("B2"), approved[0].ID)
}

package siperuk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.ListBookings(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClientOmitsAuthorizationWhenAnonymous(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{"token":"t","user":{"id":1,"fullName":"Budi","email":"b@x.id","role":"user"}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Login(context.Background(), "b@x.id", "rahasia")

	require.NoError(t, err)
	assert.False(t, sawAuth)
	assert.Equal(t, "t", resp.Token)
	assert.Equal(t, FlexID("1"), resp.User.ID)
	assert.Equal(t, "Budi", resp.User.FullName)
}

func TestClientDecodesErrorPayloadShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"Email atau kata sandi salah"}`, "Email atau kata sandi salah"},
		{"error string", `{"error":"ruangan tidak ditemukan"}`, "ruangan tidak ditemukan"},
		{"nested error", `{"error":{"message":"akses ditolak"}}`, "akses ditolak"},
		{"plain text", `server down`, "server down"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).ListRooms(context.Background(), "tok")

			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
			assert.Equal(t, tc.want, ErrorMessage(err, "fallback"))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListBookings(context.Background(), "stale")

	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsUnauthorized(context.Canceled))
	assert.False(t, IsUnauthorized(nil))
}

func TestClientSendsFullBookingPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/booking/B1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"B1"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).UpdateBooking(context.Background(), "tok", "B1", UpdateBookingPayload{
		RoomID:          "R1",
		UserID:          "U1",
		StartTime:       "2026-03-01T02:00:00Z",
		EndTime:         "2026-03-01T04:00:00Z",
		Purpose:         "Rapat",
		BookingStatusID: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "R1", got["roomId"])
	assert.Equal(t, "Rapat", got["purpose"])
	assert.Equal(t, float64(2), got["bookingStatusId"])
}

func TestFlexIDAcceptsStringAndNumber(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"roomId":"R1","purpose":"x"}`), &b))
	assert.Equal(t, FlexID("7"), b.ID)
	assert.Equal(t, FlexID("R1"), b.RoomID)
}

func TestStatusIDAcceptsLooseShapes(t *testing.T) {
	cases := []struct {
		raw  string
		want StatusID
	}{
		{`{"bookingStatusId":3,"purpose":"x"}`, 3},
		{`{"bookingStatusId":"2","purpose":"x"}`, 2},
		{`{"bookingStatusId":null,"purpose":"x"}`, 0},
		{`{"bookingStatusId":"pending","purpose":"x"}`, 0},
		{`{"purpose":"x"}`, 0},
	}

	for _, tc := range cases {
		var b Booking
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &b))
		assert.Equal(t, tc.want, b.BookingStatusID, tc.raw)
	}
}

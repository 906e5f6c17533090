package siperuk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failed upstream call. Message is the human-readable text
// taken from the server's error payload when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("siperuk api error: status=%d message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("siperuk api error: status=%d", e.Status)
}

// errorPayload covers the shapes the API has been seen to return:
// {"message": "..."}, {"error": "..."} and {"error": {"message": "..."}}.
type errorPayload struct {
	Message string          `json:"message"`
	Err     json.RawMessage `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(body) == 0 {
		return apiErr
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	if payload.Message != "" {
		apiErr.Message = payload.Message
		return apiErr
	}
	if len(payload.Err) > 0 {
		var s string
		if json.Unmarshal(payload.Err, &s) == nil {
			apiErr.Message = s
			return apiErr
		}
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload.Err, &nested) == nil {
			apiErr.Message = nested.Message
		}
	}
	return apiErr
}

// IsUnauthorized reports whether err is an upstream 401, the trigger for
// global session teardown.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// ErrorMessage extracts the server's message from err, falling back to the
// supplied generic text. One message per failed action, never the raw error.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

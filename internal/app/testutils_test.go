package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/show-reservation-engine/api"
	"github.com/metinatakli/show-reservation-engine/internal/mocks"
	"github.com/metinatakli/show-reservation-engine/internal/validator"
)

var _ ReservationService = (*mocks.MockReservationService)(nil)

func newTestApplication(service *mocks.MockReservationService) *application {
	return &application{
		config:    config{env: "test"},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: validator.NewValidator(),
		service:   service,
	}
}

func executeRequest(t *testing.T, app *application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.routes().ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return resp
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		// validation failures and unknown-seat errors share the status but
		// not the envelope; try the validation shape first
		var validationResp api.ValidationErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &validationResp); err == nil && len(validationResp.ValidationErrors) > 0 {
			for _, vErr := range validationResp.ValidationErrors {
				if vErr.Issue == wantErrMessage {
					return
				}
			}
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
			return
		}

		fallthrough
	default:
		var errorResp api.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}

package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/show-reservation-engine/api"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

	if err := app.readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	req.SeatIDs = normalizeSeatIDs(req.SeatIDs)

	if err := app.validator.Struct(req); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.service.Reserve(r.Context(), req.ShowID, req.UserName, req.SeatIDs)
	if err != nil && booking == nil {
		app.reservationErrorResponse(w, r, err)
		return
	}
	if err != nil {
		// the booking is committed; only the save failed, and the engine
		// retries on the next mutation or shutdown
		app.logger.Warn("booking committed but not yet saved", "booking_id", booking.ID, "error", err)
	}

	resp := toBookingResponse(booking)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	booking, err := app.service.Cancel(r.Context(), bookingID)
	if err != nil && booking == nil {
		app.reservationErrorResponse(w, r, err)
		return
	}
	if err != nil {
		app.logger.Warn("cancellation committed but not yet saved", "booking_id", booking.ID, "error", err)
	}

	resp := toBookingResponse(booking)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingsOfUser(w http.ResponseWriter, r *http.Request) {
	userName := r.URL.Query().Get("user")
	if userName == "" {
		app.badRequestResponse(w, r, errors.New("query parameter 'user' is required"))
		return
	}
	if len(userName) > 60 {
		app.badRequestResponse(w, r, fmt.Errorf("query parameter 'user' must be at most 60 characters"))
		return
	}

	bookings := app.service.BookingsByUser(userName)

	resp := api.UserBookingsResponse{
		UserName: userName,
		Bookings: make([]api.BookingResponse, len(bookings)),
	}
	for i, b := range bookings {
		resp.Bookings[i] = toBookingResponse(b)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(b *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		ID:        b.ID,
		UserName:  b.UserName,
		ShowID:    b.ShowID,
		SeatIDs:   b.SeatIDs,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestID        string            `json:"request_id,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

type Movie struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Duration int    `json:"duration_minutes"`
	Genre    string `json:"genre"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type Show struct {
	ID             string          `json:"id"`
	MovieID        string          `json:"movie_id"`
	MovieTitle     string          `json:"movie_title,omitempty"`
	StartTime      time.Time       `json:"start_time"`
	Screen         string          `json:"screen"`
	PricePerSeat   decimal.Decimal `json:"price_per_seat"`
	AvailableSeats int             `json:"available_seats"`
	TotalSeats     int             `json:"total_seats"`
}

type ShowListResponse struct {
	Shows []Show `json:"shows"`
}

type Seat struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowID   string    `json:"show_id"`
	Screen   string    `json:"screen"`
	SeatRows []SeatRow `json:"seat_rows"`
}

type CreateBookingRequest struct {
	UserName string   `json:"user_name" validate:"required,min=1,max=60"`
	ShowID   string   `json:"show_id" validate:"required"`
	SeatIDs  []string `json:"seat_ids" validate:"required,min=1,dive,seat_id"`
}

type BookingResponse struct {
	ID        string          `json:"id"`
	UserName  string          `json:"user_name"`
	ShowID    string          `json:"show_id"`
	SeatIDs   []string        `json:"seat_ids"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type UserBookingsResponse struct {
	UserName string            `json:"user_name"`
	Bookings []BookingResponse `json:"bookings"`
}

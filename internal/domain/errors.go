package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownShow        = errors.New("show not found")
	ErrUnknownBooking     = errors.New("booking not found")
	ErrEmptySeatSelection = errors.New("no seats selected")
	ErrPaymentDeclined    = errors.New("payment declined")
)

// UnknownSeatsError reports seat ids that do not exist in the show's seat
// map. SeatIDs is sorted.
type UnknownSeatsError struct {
	SeatIDs []string
}

func (e *UnknownSeatsError) Error() string {
	return fmt.Sprintf("unknown seat(s): %s", strings.Join(e.SeatIDs, ", "))
}

// SeatsUnavailableError reports seat ids that are already booked. SeatIDs is
// sorted.
type SeatsUnavailableError struct {
	SeatIDs []string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seat(s) not available: %s", strings.Join(e.SeatIDs, ", "))
}

// PersistenceError wraps a failure to save or load the durable booking
// record. Op is "save" or "load".
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IntegrityError reports conflicting seat claims between restored bookings.
// It is raised during reconciliation and must halt startup: the engine never
// silently picks a winner between two bookings claiming the same seat.
type IntegrityError struct {
	ShowID    string
	BookingID string
	Err       error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation restoring booking %s on show %s: %v", e.BookingID, e.ShowID, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

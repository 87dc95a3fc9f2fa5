package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Show is a scheduled screening with its own seat map and pricing. Shows are
// created once at startup and never change afterwards, except through their
// SeatMap.
type Show struct {
	ID           string
	MovieID      string
	StartTime    time.Time
	Screen       string
	PricePerSeat decimal.Decimal
	Seats        *SeatMap
}

func (s *Show) AvailableSeats() int {
	return s.Seats.AvailableCount()
}

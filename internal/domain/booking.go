package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Booking binds a user label to a set of seats on one show. It is immutable
// once created and destroyed only by cancellation. SeatIDs keeps the order
// the seats were requested in.
type Booking struct {
	ID        string
	UserName  string
	ShowID    string
	SeatIDs   []string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// LedgerSnapshot is the durable form of the booking ledger: every active
// booking in insertion order.
type LedgerSnapshot struct {
	Bookings []Booking
}

// LedgerStore durably records ledger snapshots and reads them back on
// startup. Save must atomically replace the previous durable record so a
// crash mid-write never leaves a torn snapshot. Load returns an empty
// snapshot, not an error, when no record exists yet.
type LedgerStore interface {
	Save(ctx context.Context, snapshot LedgerSnapshot) error
	Load(ctx context.Context) (LedgerSnapshot, error)
}

// PaymentProvider is the opaque payment collaborator. Charge reports whether
// the payment was accepted; the engine depends on nothing beyond that.
type PaymentProvider interface {
	Charge(ctx context.Context, amount decimal.Decimal) bool
}

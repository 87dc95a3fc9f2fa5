package booking

import (
	"iter"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Ledger is the authoritative store of active bookings. It mediates every
// reservation and cancellation against the owning show's seat map, so that
// after each committed operation the booked seats of a show are exactly the
// union of the seat sets of the ledger's bookings for that show.
type Ledger struct {
	mu       sync.Mutex
	logger   *slog.Logger
	catalog  domain.Catalog
	ids      *Sequence
	bookings map[string]*domain.Booking
	order    []string
}

func NewLedger(catalog domain.Catalog, logger *slog.Logger) *Ledger {
	return &Ledger{
		logger:   logger,
		catalog:  catalog,
		ids:      NewSequence(),
		bookings: make(map[string]*domain.Booking),
	}
}

// Create reserves seatIDs on show for userName and records the resulting
// booking. Duplicate seat ids are collapsed, keeping first-occurrence order.
// If the seat map rejects the request the ledger is left unchanged and the
// seat map's error is returned as-is.
func (l *Ledger) Create(show *domain.Show, userName string, seatIDs []string) (*domain.Booking, error) {
	seatIDs = DedupeSeatIDs(seatIDs)
	if len(seatIDs) == 0 {
		return nil, domain.ErrEmptySeatSelection
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.ids.Next()

	if err := show.Seats.ReserveAll(seatIDs, id); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:        id,
		UserName:  userName,
		ShowID:    show.ID,
		SeatIDs:   seatIDs,
		Amount:    show.PricePerSeat.Mul(decimal.NewFromInt(int64(len(seatIDs)))),
		CreatedAt: time.Now().Truncate(time.Minute),
	}

	l.bookings[id] = b
	l.order = append(l.order, id)

	return b, nil
}

// Cancel removes the booking and releases its seats. Cancelling an unknown
// id returns ErrUnknownBooking and touches nothing. A booking whose show is
// no longer in the catalog is still removed; the missing show is logged as a
// recoverable inconsistency since shows are static for the lifetime of the
// engine.
func (l *Ledger) Cancel(bookingID string) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bookings[bookingID]
	if !ok {
		return nil, domain.ErrUnknownBooking
	}

	delete(l.bookings, bookingID)
	for i, id := range l.order {
		if id == bookingID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}

	show, ok := l.catalog.GetShow(b.ShowID)
	if !ok {
		l.logger.Warn("cancelled booking references unknown show, seats not released",
			"booking_id", b.ID, "show_id", b.ShowID)
		return b, nil
	}

	if err := show.Seats.ReleaseAll(b.SeatIDs); err != nil {
		l.logger.Warn("seat release failed during cancellation",
			"booking_id", b.ID, "show_id", b.ShowID, "error", err)
	}

	return b, nil
}

// Get returns the booking with the given id, if it exists.
func (l *Ledger) Get(bookingID string) (*domain.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bookings[bookingID]

	return b, ok
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.bookings)
}

// FindByUser yields the user's bookings in insertion order, matching the
// user label case-insensitively. The sequence is empty, not an error, when
// nothing matches.
func (l *Ledger) FindByUser(userName string) iter.Seq[*domain.Booking] {
	l.mu.Lock()
	matched := make([]*domain.Booking, 0, len(l.order))
	for _, id := range l.order {
		if b := l.bookings[id]; strings.EqualFold(b.UserName, userName) {
			matched = append(matched, b)
		}
	}
	l.mu.Unlock()

	return func(yield func(*domain.Booking) bool) {
		for _, b := range matched {
			if !yield(b) {
				return
			}
		}
	}
}

// Snapshot returns a deep copy of every booking in insertion order, suitable
// for handing to a LedgerStore.
func (l *Ledger) Snapshot() domain.LedgerSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings := make([]domain.Booking, len(l.order))
	for i, id := range l.order {
		b := *l.bookings[id]
		b.SeatIDs = append([]string(nil), b.SeatIDs...)
		bookings[i] = b
	}

	return domain.LedgerSnapshot{Bookings: bookings}
}

// Restore rebuilds the ledger and the catalog's seat maps from a snapshot.
// Every restored booking re-reserves its original seats; a rejection means
// two bookings in the snapshot claim overlapping seats (or seats that no
// longer exist), which is surfaced as an IntegrityError rather than silently
// resolved. Bookings referencing shows missing from the catalog are kept in
// the ledger, without seats to re-derive, and logged.
//
// Restore also seeds the identifier sequence past the highest restored id.
func (l *Ledger) Restore(snapshot domain.LedgerSnapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var maxSeq uint64

	for _, b := range snapshot.Bookings {
		b.SeatIDs = append([]string(nil), b.SeatIDs...)

		show, ok := l.catalog.GetShow(b.ShowID)
		if !ok {
			l.logger.Warn("restored booking references unknown show",
				"booking_id", b.ID, "show_id", b.ShowID)
		} else if err := show.Seats.ReserveAll(b.SeatIDs, b.ID); err != nil {
			return &domain.IntegrityError{ShowID: b.ShowID, BookingID: b.ID, Err: err}
		}

		l.bookings[b.ID] = &b
		l.order = append(l.order, b.ID)

		if n, ok := ParseID(b.ID); ok && n > maxSeq {
			maxSeq = n
		}
	}

	l.ids.Seed(maxSeq)

	return nil
}

// DedupeSeatIDs collapses duplicate seat ids, keeping first-occurrence
// order.
func DedupeSeatIDs(seatIDs []string) []string {
	seen := make(map[string]struct{}, len(seatIDs))
	out := make([]string, 0, len(seatIDs))

	for _, id := range seatIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

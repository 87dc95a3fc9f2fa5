package domain

import (
	"fmt"
	"sort"
	"sync"
)

// seat is an addressable unit of a show's seat map. bookingID is a non-owning
// back-reference to the booking holding the seat; it is set if and only if
// the seat is booked.
type seat struct {
	id        string
	booked    bool
	bookingID string
}

// SeatStatus is a read-only view of a single seat, as returned by Snapshot.
type SeatStatus struct {
	ID        string
	Booked    bool
	BookingID string
}

// SeatMap holds the fixed set of seats belonging to one show and implements
// atomic multi-seat reserve and release. A single mutex guards the whole map:
// seat maps are small (tens of seats) and operations only mutate in-memory
// state, so per-seat locking buys nothing over one short critical section.
// Failing seat ids are always reported in sorted order.
type SeatMap struct {
	mu    sync.Mutex
	seats map[string]*seat
	order []string
}

// NewSeatMap builds a rows x cols seat map with ids A1..A<cols> through the
// rows-th letter, in row-major order. The seat set is fixed for the lifetime
// of the map.
func NewSeatMap(rows, cols int) *SeatMap {
	m := &SeatMap{
		seats: make(map[string]*seat, rows*cols),
		order: make([]string, 0, rows*cols),
	}

	for r := range rows {
		for c := 1; c <= cols; c++ {
			id := fmt.Sprintf("%c%d", 'A'+r, c)
			m.seats[id] = &seat{id: id}
			m.order = append(m.order, id)
		}
	}

	return m
}

func (m *SeatMap) Size() int {
	return len(m.order)
}

// IsAvailable reports whether the seat exists and is not booked.
func (m *SeatMap) IsAvailable(seatID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.seats[seatID]

	return ok && !s.booked
}

// ReserveAll marks every given seat as booked by bookingID. The operation is
// all-or-nothing: if any seat is unknown or already booked, no seat changes
// state and the returned error carries exactly the offending ids
// (UnknownSeatsError or SeatsUnavailableError).
func (m *SeatMap) ReserveAll(seatIDs []string, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkLocked(seatIDs); err != nil {
		return err
	}

	for _, id := range seatIDs {
		s := m.seats[id]
		s.booked = true
		s.bookingID = bookingID
	}

	return nil
}

// Validate runs ReserveAll's checks without mutating anything: it reports
// unknown or already-booked seats among seatIDs. A nil result is only a
// point-in-time answer; ReserveAll remains the authoritative check.
func (m *SeatMap) Validate(seatIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.checkLocked(seatIDs)
}

// checkLocked reports unknown then unavailable seats among seatIDs. Callers
// must hold mu.
func (m *SeatMap) checkLocked(seatIDs []string) error {
	var unknown, unavailable []string

	for _, id := range seatIDs {
		s, ok := m.seats[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		if s.booked {
			unavailable = append(unavailable, id)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &UnknownSeatsError{SeatIDs: unknown}
	}
	if len(unavailable) > 0 {
		sort.Strings(unavailable)
		return &SeatsUnavailableError{SeatIDs: unavailable}
	}

	return nil
}

// ReleaseAll marks every given seat as available and clears its booking
// back-reference. Unknown ids fail the whole call without touching any seat;
// releasing an already-available seat is a no-op.
func (m *SeatMap) ReleaseAll(seatIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var unknown []string

	for _, id := range seatIDs {
		if _, ok := m.seats[id]; !ok {
			unknown = append(unknown, id)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &UnknownSeatsError{SeatIDs: unknown}
	}

	for _, id := range seatIDs {
		s := m.seats[id]
		s.booked = false
		s.bookingID = ""
	}

	return nil
}

// Snapshot returns the state of every seat in creation order.
func (m *SeatMap) Snapshot() []SeatStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SeatStatus, len(m.order))
	for i, id := range m.order {
		s := m.seats[id]
		out[i] = SeatStatus{ID: s.id, Booked: s.booked, BookingID: s.bookingID}
	}

	return out
}

func (m *SeatMap) AvailableCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, s := range m.seats {
		if !s.booked {
			count++
		}
	}

	return count
}

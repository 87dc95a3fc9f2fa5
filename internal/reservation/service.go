// Package reservation composes the booking ledger, catalog, payment
// collaborator and persistence store into the engine's public façade. All
// transports (HTTP, console) go through a Service.
package reservation

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/metinatakli/show-reservation-engine/internal/booking"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/shopspring/decimal"
)

type Service struct {
	logger   *slog.Logger
	catalog  domain.Catalog
	ledger   *booking.Ledger
	store    domain.LedgerStore
	payments domain.PaymentProvider

	// saveMu is held across snapshot capture and store write. Without it,
	// two concurrent mutations could capture snapshots in one order and
	// reach the store in the other, leaving the older snapshot on disk.
	saveMu sync.Mutex
}

func NewService(
	catalog domain.Catalog,
	store domain.LedgerStore,
	payments domain.PaymentProvider,
	logger *slog.Logger) *Service {

	return &Service{
		logger:   logger,
		catalog:  catalog,
		ledger:   booking.NewLedger(catalog, logger),
		store:    store,
		payments: payments,
	}
}

// Load restores the ledger and seat occupancy from the persistence store.
// A store that cannot be read degrades to an empty ledger with a warning;
// conflicting seat claims between restored bookings are fatal and returned
// as an IntegrityError.
func (s *Service) Load(ctx context.Context) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("could not load booking records, starting with an empty ledger", "error", err)
		return nil
	}

	if err := s.ledger.Restore(snapshot); err != nil {
		return err
	}

	if n := len(snapshot.Bookings); n > 0 {
		s.logger.Info("restored bookings from disk", "count", n)
	}

	return nil
}

// Reserve books seatIDs on the given show for userName. Payment is charged
// before any seat or ledger state changes; a declined charge leaves the
// engine untouched. After the booking is committed in memory, the ledger is
// saved: a save failure does not roll the booking back (it is logically
// committed) and is returned alongside the booking so the caller can report
// it and retry Save later.
func (s *Service) Reserve(ctx context.Context, showID, userName string, seatIDs []string) (*domain.Booking, error) {
	show, ok := s.catalog.GetShow(showID)
	if !ok {
		return nil, domain.ErrUnknownShow
	}

	seatIDs = booking.DedupeSeatIDs(seatIDs)
	if len(seatIDs) == 0 {
		return nil, domain.ErrEmptySeatSelection
	}

	// Reject obviously bad requests before charging anyone. ReserveAll
	// re-checks authoritatively after payment.
	if err := show.Seats.Validate(seatIDs); err != nil {
		return nil, err
	}

	amount := show.PricePerSeat.Mul(decimal.NewFromInt(int64(len(seatIDs))))

	if !s.payments.Charge(ctx, amount) {
		return nil, domain.ErrPaymentDeclined
	}

	b, err := s.ledger.Create(show, userName, seatIDs)
	if err != nil {
		// Lost a race between Validate and ReserveAll after the charge
		// went through. The simulated gateway has nothing to refund, but
		// it is worth a trace in the log.
		s.logger.Warn("reservation failed after payment", "show_id", showID, "error", err)
		return nil, err
	}

	return b, s.persist(ctx)
}

// Cancel removes the booking and frees its seats. As with Reserve, a save
// failure is reported alongside the cancelled booking rather than undoing
// the cancellation.
func (s *Service) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.ledger.Cancel(bookingID)
	if err != nil {
		return nil, err
	}

	return b, s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.save(ctx); err != nil {
		s.logger.Warn("could not save booking records", "error", err)
		return err
	}

	return nil
}

// Save writes the current ledger to the persistence store. Exposed so
// callers can retry after a failed save and flush on shutdown.
func (s *Service) Save(ctx context.Context) error {
	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	return s.store.Save(ctx, s.ledger.Snapshot())
}

// Booking returns the active booking with the given id.
func (s *Service) Booking(bookingID string) (*domain.Booking, error) {
	b, ok := s.ledger.Get(bookingID)
	if !ok {
		return nil, domain.ErrUnknownBooking
	}

	return b, nil
}

// BookingsByUser returns the user's bookings in insertion order, matching
// the label case-insensitively.
func (s *Service) BookingsByUser(userName string) []*domain.Booking {
	out := []*domain.Booking{}
	for b := range s.ledger.FindByUser(userName) {
		out = append(out, b)
	}

	return out
}

// SeatMap returns the show and the current state of its seats.
func (s *Service) SeatMap(showID string) (*domain.Show, []domain.SeatStatus, error) {
	show, ok := s.catalog.GetShow(showID)
	if !ok {
		return nil, nil, domain.ErrUnknownShow
	}

	return show, show.Seats.Snapshot(), nil
}

// Show returns the show with the given id.
func (s *Service) Show(showID string) (*domain.Show, error) {
	show, ok := s.catalog.GetShow(showID)
	if !ok {
		return nil, domain.ErrUnknownShow
	}

	return show, nil
}

func (s *Service) Shows() []*domain.Show {
	return s.catalog.AllShows()
}

func (s *Service) Movies() []*domain.Movie {
	return s.catalog.AllMovies()
}

// Movie returns the movie a show refers to, when it is still in the
// catalog.
func (s *Service) Movie(movieID string) (*domain.Movie, bool) {
	return s.catalog.GetMovie(movieID)
}

// IsIntegrityError reports whether err is the unrecoverable startup
// condition that must halt the process.
func IsIntegrityError(err error) bool {
	var integrity *domain.IntegrityError
	return errors.As(err, &integrity)
}

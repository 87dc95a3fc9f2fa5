package mocks

import (
	"context"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Reserve(ctx context.Context, showID, userName string, seatIDs []string) (*domain.Booking, error) {
	args := m.Called(ctx, showID, userName, seatIDs)

	var b *domain.Booking
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Booking)
	}

	return b, args.Error(1)
}

func (m *MockReservationService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)

	var b *domain.Booking
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Booking)
	}

	return b, args.Error(1)
}

func (m *MockReservationService) BookingsByUser(userName string) []*domain.Booking {
	args := m.Called(userName)
	return args.Get(0).([]*domain.Booking)
}

func (m *MockReservationService) SeatMap(showID string) (*domain.Show, []domain.SeatStatus, error) {
	args := m.Called(showID)

	var (
		show  *domain.Show
		seats []domain.SeatStatus
	)
	if args.Get(0) != nil {
		show = args.Get(0).(*domain.Show)
	}
	if args.Get(1) != nil {
		seats = args.Get(1).([]domain.SeatStatus)
	}

	return show, seats, args.Error(2)
}

func (m *MockReservationService) Shows() []*domain.Show {
	args := m.Called()
	return args.Get(0).([]*domain.Show)
}

func (m *MockReservationService) Movies() []*domain.Movie {
	args := m.Called()
	return args.Get(0).([]*domain.Movie)
}

func (m *MockReservationService) Movie(movieID string) (*domain.Movie, bool) {
	args := m.Called(movieID)

	var movie *domain.Movie
	if args.Get(0) != nil {
		movie = args.Get(0).(*domain.Movie)
	}

	return movie, args.Bool(1)
}

func (m *MockReservationService) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

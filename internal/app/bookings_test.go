package app

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/show-reservation-engine/api"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/metinatakli/show-reservation-engine/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingsTestSuite struct {
	suite.Suite
	app     *application
	service *mocks.MockReservationService
}

func (s *BookingsTestSuite) SetupTest() {
	s.service = new(mocks.MockReservationService)
	s.app = newTestApplication(s.service)
}

func TestBookingsSuite(t *testing.T) {
	suite.Run(t, new(BookingsTestSuite))
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "B-0001",
		UserName:  "alice",
		ShowID:    "S101",
		SeatIDs:   []string{"A1", "A2"},
		Amount:    decimal.RequireFromString("400.00"),
		CreatedAt: time.Date(2026, 8, 30, 19, 15, 0, 0, time.UTC),
	}
}

func (s *BookingsTestSuite) TestCreateBooking() {
	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when body is malformed",
			body:           "not-json",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body contains incorrect JSON type (at character 1)",
		},
		{
			name:           "should fail when user name is missing",
			body:           api.CreateBookingRequest{ShowID: "S101", SeatIDs: []string{"A1"}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "should fail when seat list is empty",
			body:           api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "should fail when a seat id is not well-formed",
			body:           api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{"A1", "first row please"}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a seat id like A1",
		},
		{
			name: "should fail when the show does not exist",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S999", SeatIDs: []string{"A1"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S999", "alice", []string{"A1"}).
					Return(nil, domain.ErrUnknownShow)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "show not found",
		},
		{
			name: "should fail when seats are unknown for the show",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{"Z9"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S101", "alice", []string{"Z9"}).
					Return(nil, &domain.UnknownSeatsError{SeatIDs: []string{"Z9"}})
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "unknown seat(s): Z9",
		},
		{
			name: "should fail with conflict when seats are taken",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{"A1"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S101", "alice", []string{"A1"}).
					Return(nil, &domain.SeatsUnavailableError{SeatIDs: []string{"A1"}})
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "seat(s) not available: A1",
		},
		{
			name: "should fail when payment is declined",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{"A1"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S101", "alice", []string{"A1"}).
					Return(nil, domain.ErrPaymentDeclined)
			},
			wantStatus:     http.StatusPaymentRequired,
			wantErrMessage: "payment declined",
		},
		{
			name: "should fail with server error on unexpected failures",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{"A1"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S101", "alice", []string{"A1"}).
					Return(nil, fmt.Errorf("boom"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should create a booking and normalize seat ids",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{" a1 ", "A2"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S101", "alice", []string{"A1", "A2"}).
					Return(testBooking(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "should still create the booking when only the save failed",
			body: api.CreateBookingRequest{UserName: "alice", ShowID: "S101", SeatIDs: []string{"A1", "A2"}},
			setupMocks: func() {
				s.service.On("Reserve", mock.Anything, "S101", "alice", []string{"A1", "A2"}).
					Return(testBooking(), &domain.PersistenceError{Op: "save", Err: fmt.Errorf("disk full")})
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			defer s.service.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w := executeRequest(s.T(), s.app, http.MethodPost, "/bookings", tt.body)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusCreated {
				resp := decodeResponse[api.BookingResponse](s.T(), w)
				s.Equal("B-0001", resp.ID)
				s.Equal([]string{"A1", "A2"}, resp.SeatIDs)
				s.True(resp.Amount.Equal(decimal.RequireFromString("400.00")))
			}
		})
	}
}

func (s *BookingsTestSuite) TestCancelBooking() {
	tests := []struct {
		name           string
		bookingID      string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:      "should fail when the booking does not exist",
			bookingID: "B-9999",
			setupMocks: func() {
				s.service.On("Cancel", mock.Anything, "B-9999").Return(nil, domain.ErrUnknownBooking)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "booking not found",
		},
		{
			name:      "should cancel an existing booking",
			bookingID: "B-0001",
			setupMocks: func() {
				s.service.On("Cancel", mock.Anything, "B-0001").Return(testBooking(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "should report success when only the save failed",
			bookingID: "B-0001",
			setupMocks: func() {
				s.service.On("Cancel", mock.Anything, "B-0001").
					Return(testBooking(), &domain.PersistenceError{Op: "save", Err: fmt.Errorf("disk full")})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			defer s.service.AssertExpectations(s.T())

			tt.setupMocks()

			w := executeRequest(s.T(), s.app, http.MethodDelete, "/bookings/"+tt.bookingID, nil)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *BookingsTestSuite) TestGetBookingsOfUser() {
	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantBookings   int
	}{
		{
			name:           "should fail without a user parameter",
			url:            "/bookings",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "query parameter 'user' is required",
		},
		{
			name: "should return an empty list for an unknown user",
			url:  "/bookings?user=carol",
			setupMocks: func() {
				s.service.On("BookingsByUser", "carol").Return([]*domain.Booking{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "should return the user's bookings",
			url:  "/bookings?user=alice",
			setupMocks: func() {
				s.service.On("BookingsByUser", "alice").Return([]*domain.Booking{testBooking()})
			},
			wantStatus:   http.StatusOK,
			wantBookings: 1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			defer s.service.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w := executeRequest(s.T(), s.app, http.MethodGet, tt.url, nil)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				resp := decodeResponse[api.UserBookingsResponse](s.T(), w)
				s.Len(resp.Bookings, tt.wantBookings)

				if tt.wantBookings > 0 {
					want := api.BookingResponse{
						ID:        "B-0001",
						UserName:  "alice",
						ShowID:    "S101",
						SeatIDs:   []string{"A1", "A2"},
						Amount:    decimal.RequireFromString("400.00"),
						CreatedAt: time.Date(2026, 8, 30, 19, 15, 0, 0, time.UTC),
					}
					if diff := cmp.Diff(want, resp.Bookings[0]); diff != "" {
						s.T().Errorf("booking mismatch (-want +got):\n%s", diff)
					}
				}
			}
		})
	}
}

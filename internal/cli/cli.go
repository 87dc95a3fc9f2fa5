// Package cli is the interactive console adapter: a menu loop translating
// keyboard commands into reservation-service calls. It owns all of the
// human-readable formatting and none of the reservation logic, so it can be
// swapped for any other transport without touching the engine.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/metinatakli/show-reservation-engine/internal/booking"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/metinatakli/show-reservation-engine/internal/reservation"
	"github.com/shopspring/decimal"
)

type CLI struct {
	in      *bufio.Scanner
	out     io.Writer
	service *reservation.Service
}

func New(in io.Reader, out io.Writer, service *reservation.Service) *CLI {
	return &CLI{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
	}
}

// Run drives the menu loop until the user chooses to exit or input ends.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the Movie Ticket Booking System!")

	for {
		c.printMenu()

		choice, ok := c.prompt("Enter choice")
		if !ok {
			return c.saveAndExit(ctx)
		}

		switch choice {
		case "1":
			c.listMovies()
		case "2":
			c.listShows()
		case "3":
			c.viewSeatMap()
		case "4":
			c.bookSeats(ctx)
		case "5":
			c.cancelBooking(ctx)
		case "6":
			c.viewMyBookings()
		case "7":
			return c.saveAndExit(ctx)
		default:
			fmt.Fprintln(c.out, "Unknown choice. Please choose 1-7.")
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Main Menu")
	fmt.Fprintln(c.out, "1. List movies")
	fmt.Fprintln(c.out, "2. List shows")
	fmt.Fprintln(c.out, "3. View seat map for a show")
	fmt.Fprintln(c.out, "4. Book seats")
	fmt.Fprintln(c.out, "5. Cancel booking")
	fmt.Fprintln(c.out, "6. View my bookings")
	fmt.Fprintln(c.out, "7. Save & Exit")
}

func (c *CLI) listMovies() {
	fmt.Fprintln(c.out, "\nAvailable Movies:")
	for _, m := range c.service.Movies() {
		fmt.Fprintf(c.out, "  [%s] %s (%s, %d min, %s)\n", m.ID, m.Title, m.Language, m.Duration, m.Genre)
	}
}

func (c *CLI) listShows() {
	fmt.Fprintln(c.out, "\nAvailable Shows:")
	for _, s := range c.service.Shows() {
		fmt.Fprintf(c.out, "  %s\n", c.formatShow(s))
	}
}

func (c *CLI) formatShow(s *domain.Show) string {
	title := s.MovieID
	if movie, ok := c.service.Movie(s.MovieID); ok {
		title = movie.Title
	}

	return fmt.Sprintf("[%s] %s at %s | Screen: %s | Price: %s | Available: %d",
		s.ID, title, s.StartTime.Format("2006-01-02 15:04"), s.Screen,
		s.PricePerSeat.StringFixed(2), s.AvailableSeats())
}

func (c *CLI) viewSeatMap() {
	showID, ok := c.prompt("Enter show id (e.g. S101) to view seat map")
	if !ok {
		return
	}

	show, seats, err := c.service.SeatMap(strings.ToUpper(showID))
	if err != nil {
		fmt.Fprintln(c.out, "Show id not found.")
		return
	}

	fmt.Fprintf(c.out, "\nShow: %s\n", c.formatShow(show))
	fmt.Fprint(c.out, RenderSeatMap(seats))
}

func (c *CLI) bookSeats(ctx context.Context) {
	userName, ok := c.prompt("Enter your name (for booking)")
	if !ok || userName == "" {
		fmt.Fprintln(c.out, "A name is required to book.")
		return
	}

	showID, ok := c.prompt("Enter show id to book (e.g. S101)")
	if !ok {
		return
	}
	showID = strings.ToUpper(showID)

	show, seats, err := c.service.SeatMap(showID)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid show id.")
		return
	}

	fmt.Fprintf(c.out, "\nShow: %s\n", c.formatShow(show))
	fmt.Fprint(c.out, RenderSeatMap(seats))
	fmt.Fprintf(c.out, "Price per seat: %s\n", show.PricePerSeat.StringFixed(2))

	seatsInput, ok := c.prompt("Enter seat ids to book separated by commas (e.g. A1,A2)")
	if !ok {
		return
	}

	seatIDs := booking.DedupeSeatIDs(ParseSeatList(seatsInput))
	if len(seatIDs) == 0 {
		fmt.Fprintln(c.out, "No seats entered.")
		return
	}

	total := show.PricePerSeat.Mul(decimal.NewFromInt(int64(len(seatIDs))))
	fmt.Fprintf(c.out, "Total amount: %s\n", total.StringFixed(2))

	confirm, ok := c.prompt("Proceed to payment? (y/n)")
	if !ok || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(c.out, "Booking cancelled by user.")
		return
	}

	booking, err := c.service.Reserve(ctx, showID, userName, seatIDs)
	if booking == nil {
		c.printReservationError(err)
		return
	}
	if err != nil {
		fmt.Fprintln(c.out, "Warning: booking confirmed but could not be saved to disk yet.")
	}

	fmt.Fprintln(c.out, "Booking successful! Your booking details:")
	fmt.Fprintf(c.out, "  %s\n", formatBooking(booking))
}

func (c *CLI) printReservationError(err error) {
	var (
		unknownSeats *domain.UnknownSeatsError
		unavailable  *domain.SeatsUnavailableError
	)

	switch {
	case errors.As(err, &unknownSeats):
		fmt.Fprintf(c.out, "These seats do not exist: %s\n", strings.Join(unknownSeats.SeatIDs, ", "))
	case errors.As(err, &unavailable):
		fmt.Fprintf(c.out, "These seats are not available: %s\n", strings.Join(unavailable.SeatIDs, ", "))
	case errors.Is(err, domain.ErrPaymentDeclined):
		fmt.Fprintln(c.out, "Payment failed. Booking aborted.")
	case errors.Is(err, domain.ErrUnknownShow):
		fmt.Fprintln(c.out, "Invalid show id.")
	case errors.Is(err, domain.ErrEmptySeatSelection):
		fmt.Fprintln(c.out, "No seats entered.")
	default:
		fmt.Fprintf(c.out, "Booking failed: %v\n", err)
	}
}

func (c *CLI) cancelBooking(ctx context.Context) {
	bookingID, ok := c.prompt("Enter booking id to cancel (e.g. B-0001)")
	if !ok {
		return
	}
	bookingID = strings.ToUpper(bookingID)

	booking, err := c.service.Booking(bookingID)
	if err != nil {
		fmt.Fprintln(c.out, "Booking id not found.")
		return
	}

	fmt.Fprintf(c.out, "Booking found: %s\n", formatBooking(booking))

	confirm, ok := c.prompt("Confirm cancellation? Refund will be simulated. (y/n)")
	if !ok || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(c.out, "Cancellation aborted.")
		return
	}

	cancelled, err := c.service.Cancel(ctx, bookingID)
	if cancelled == nil {
		fmt.Fprintf(c.out, "Cancellation failed: %v\n", err)
		return
	}
	if err != nil {
		fmt.Fprintln(c.out, "Warning: cancellation confirmed but could not be saved to disk yet.")
	}

	fmt.Fprintf(c.out, "Booking %s cancelled. Refund of %s simulated.\n",
		cancelled.ID, cancelled.Amount.StringFixed(2))
}

func (c *CLI) viewMyBookings() {
	userName, ok := c.prompt("Enter your name to view your bookings")
	if !ok {
		return
	}

	bookings := c.service.BookingsByUser(userName)
	if len(bookings) == 0 {
		fmt.Fprintf(c.out, "No bookings found for user: %s\n", userName)
		return
	}

	for _, b := range bookings {
		fmt.Fprintf(c.out, "  %s\n", formatBooking(b))
	}
}

func (c *CLI) saveAndExit(ctx context.Context) error {
	if err := c.service.Save(ctx); err != nil {
		fmt.Fprintln(c.out, "Error saving bookings:", err)
		return err
	}

	fmt.Fprintln(c.out, "Bookings saved. Exiting...")

	return nil
}

func (c *CLI) prompt(message string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", message)

	if !c.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(c.in.Text()), true
}

func formatBooking(b *domain.Booking) string {
	return fmt.Sprintf("BookingID: %s | User: %s | Show: %s | Seats: %s | Amount: %s | Time: %s",
		b.ID, b.UserName, b.ShowID, strings.Join(b.SeatIDs, ","),
		b.Amount.StringFixed(2), b.CreatedAt.Format("2006-01-02 15:04"))
}

// ParseSeatList splits a comma-separated seat list, trimming and
// uppercasing each entry.
func ParseSeatList(input string) []string {
	var out []string

	for part := range strings.SplitSeq(input, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
